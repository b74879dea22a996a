// Package document adapts parsed markup to the small set of queries the
// analysis pipeline needs.
package document

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"competitoranalyzer/internal/log"
)

// Document is a navigable view of one parsed page. Lookups never fail: a
// missing element or attribute yields an empty string or an empty slice.
type Document interface {
	// Title returns the trimmed text of the first <title> element.
	Title() string
	// MetaContent returns the content attribute of the first <meta name=...>.
	MetaContent(name string) string
	// Texts returns the trimmed text of every element matching selector, in
	// document order.
	Texts(selector string) []string
	// Attrs returns the trimmed value of attr for every element matching
	// selector that carries it, in document order.
	Attrs(selector, attr string) []string
}

type queryDocument struct {
	doc *goquery.Document
}

// FromMarkup parses markup leniently. Unparseable input produces an empty
// document rather than an error.
func FromMarkup(markup string) Document {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		log.Logger.Warn("failed to parse markup, using empty document",
			zap.Int("content_length", len(markup)),
			zap.Error(err),
		)
		root = &html.Node{Type: html.DocumentNode}
	}
	return FromNode(root)
}

// FromNode wraps an already parsed tree.
func FromNode(root *html.Node) Document {
	return &queryDocument{doc: goquery.NewDocumentFromNode(root)}
}

func (d *queryDocument) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

func (d *queryDocument) MetaContent(name string) string {
	var content string
	d.doc.Find("meta[name]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if n, _ := s.Attr("name"); n != name {
			return true
		}
		content, _ = s.Attr("content")
		return false
	})
	return content
}

func (d *queryDocument) Texts(selector string) []string {
	texts := make([]string, 0)
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return texts
}

func (d *queryDocument) Attrs(selector, attr string) []string {
	values := make([]string, 0)
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok {
			values = append(values, strings.TrimSpace(v))
		}
	})
	return values
}
