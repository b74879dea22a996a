package analysis

import (
	"regexp"
	"sort"
	"strings"

	"competitoranalyzer/internal/model"
)

const (
	maxKeywords      = 10
	minKeywordLength = 4
)

var (
	wordPattern = regexp.MustCompile(`\w+`)

	stopWords = map[string]struct{}{
		"this": {},
		"that": {},
		"with": {},
		"from": {},
	}
)

// AnalyzeKeywords returns the most frequent words of text. Density is
// measured against every token, including the ones filtered out of the
// result.
func AnalyzeKeywords(text string) []model.KeywordStat {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	total := len(words)
	if total == 0 {
		return []model.KeywordStat{}
	}

	counts := make(map[string]int, total)
	order := make([]string, 0, total)
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	stats := make([]model.KeywordStat, 0, len(order))
	for _, w := range order {
		if len(w) < minKeywordLength {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		stats = append(stats, model.KeywordStat{
			Word:    w,
			Count:   counts[w],
			Density: float64(counts[w]) / float64(total) * 100,
		})
	}

	// ties keep first-seen order
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	if len(stats) > maxKeywords {
		stats = stats[:maxKeywords]
	}
	return stats
}
