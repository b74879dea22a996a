// Package analysis turns a fetched page into a competitive-analysis report.
// Every function here is pure: the same inputs always give the same report.
package analysis

import (
	"strings"

	"competitoranalyzer/internal/document"
	"competitoranalyzer/internal/model"
)

const (
	contentSelector = "p, h1, h2"
	scriptSelector  = "script[src]"
	linkSelector    = "a[href]"
)

// Analyze parses markup and assembles its report.
func Analyze(markup, requestedURL string, elapsed float64) model.Report {
	return Assemble(document.FromMarkup(markup), markup, requestedURL, elapsed)
}

// Assemble runs every analyzer over facts drawn from doc. markup must be the
// text doc was parsed from; signature and viewport checks run on it directly.
func Assemble(doc document.Document, markup, requestedURL string, elapsed float64) model.Report {
	meta := model.MetaTags{
		Title:       doc.Title(),
		Description: doc.MetaContent("description"),
		Keywords:    doc.MetaContent("keywords"),
	}
	h1s := nonNil(doc.Texts("h1"))
	text := strings.Join(doc.Texts(contentSelector), " ")
	scripts := nonNil(doc.Attrs(scriptSelector, "src"))
	links := nonNil(doc.Attrs(linkSelector, "href"))
	social := SampleSocialLinks(links)

	return model.Report{
		URL:         requestedURL,
		MetaTags:    meta,
		H1s:         h1s,
		Keywords:    AnalyzeKeywords(text),
		TechStack:   DetectTechnologies(markup, scripts),
		Traffic:     EstimateTraffic(meta, links, scripts, social),
		Performance: EvaluatePerformance(markup, elapsed),
		Backlinks:   SampleBacklinks(links, requestedURL),
		SocialLinks: social,
	}
}

// Document implementations are free to return nil for "nothing found".
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
