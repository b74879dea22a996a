package analysis

import (
	"regexp"
	"strings"

	"competitoranalyzer/internal/model"
)

const maxSampledLinks = 5

var socialPattern = regexp.MustCompile(`twitter\.com|linkedin\.com|facebook\.com|instagram\.com`)

// SampleBacklinks keeps the first absolute links that do not mention the
// requested URL. The self-link check is a plain substring test, not a host
// comparison.
func SampleBacklinks(links []string, requestedURL string) []string {
	sample := make([]string, 0, maxSampledLinks)
	for _, link := range links {
		if len(sample) == maxSampledLinks {
			break
		}
		if strings.HasPrefix(link, "http") && !strings.Contains(link, requestedURL) {
			sample = append(sample, link)
		}
	}
	if len(sample) == 0 {
		return []string{model.NoneDetected}
	}
	return sample
}

// SampleSocialLinks keeps the first links pointing at a known social platform.
func SampleSocialLinks(links []string) []string {
	sample := make([]string, 0, maxSampledLinks)
	for _, link := range links {
		if len(sample) == maxSampledLinks {
			break
		}
		if socialPattern.MatchString(link) {
			sample = append(sample, link)
		}
	}
	return sample
}
