// Package export renders reports as downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"competitoranalyzer/internal/model"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

const heuristicNote = "Note: Estimates are heuristic-based."

var renderer = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// ParseFormat maps a query value to a Format. Empty means Markdown.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "text/markdown; charset=utf-8"
}

func (f Format) Filename() string {
	if f == FormatHTML {
		return "competitor_report.html"
	}
	return "competitor_report.md"
}

// Render produces the report document in format f.
func Render(r *model.Report, f Format) ([]byte, error) {
	md := Markdown(r)
	if f != FormatHTML {
		return []byte(md), nil
	}
	return HTML(md)
}

// Markdown lays the report out section by section.
func Markdown(r *model.Report) string {
	var b strings.Builder

	b.WriteString("# Competitor Website Analysis Report\n\n")
	fmt.Fprintf(&b, "**URL:** %s\n\n", escape(r.URL))

	b.WriteString("## SEO Analysis\n\n")
	fmt.Fprintf(&b, "- Title: %s\n", orDefault(r.MetaTags.Title, "N/A"))
	fmt.Fprintf(&b, "- Description: %s\n", orDefault(r.MetaTags.Description, "N/A"))
	fmt.Fprintf(&b, "- Keywords: %s\n", orDefault(r.MetaTags.Keywords, "N/A"))
	fmt.Fprintf(&b, "- H1 Tags: %s\n\n", orDefault(strings.Join(r.H1s, ", "), "None"))

	b.WriteString("## Top Keywords\n\n")
	if len(r.Keywords) == 0 {
		b.WriteString("- None\n")
	}
	for _, kw := range r.Keywords {
		fmt.Fprintf(&b, "- %s: %d (%.2f%%)\n", escape(kw.Word), kw.Count, kw.Density)
	}
	b.WriteString("\n")

	writeList(&b, "Technology Stack", r.TechStack)
	writeList(&b, "Top Backlinks", r.Backlinks)
	writeList(&b, "Social Media Presence", r.SocialLinks)

	b.WriteString("## Performance Metrics\n\n")
	fmt.Fprintf(&b, "- Load Time: %.2fs\n", r.Performance.LoadTime)
	fmt.Fprintf(&b, "- Mobile Friendly: %s\n\n", yesNo(r.Performance.MobileFriendly))

	b.WriteString("## Estimated Traffic Sources\n\n")
	fmt.Fprintf(&b, "- SEO: %d%%\n", r.Traffic.SEO)
	fmt.Fprintf(&b, "- Social: %d%%\n", r.Traffic.Social)
	fmt.Fprintf(&b, "- Paid: %d%%\n", r.Traffic.Paid)
	fmt.Fprintf(&b, "- Referral: %d%%\n\n", r.Traffic.Referral)

	fmt.Fprintf(&b, "_%s_\n", heuristicNote)
	return b.String()
}

// HTML converts Markdown output to an HTML fragment. Raw HTML coming from
// the analyzed page is dropped by the renderer.
func HTML(markdown string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(items) == 0 {
		items = []string{model.NoneDetected}
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", escape(item))
	}
	b.WriteString("\n")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return escape(s)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"\n", " ",
	"\r", " ",
)

// escape keeps page-supplied text from being read as Markdown markup.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}
