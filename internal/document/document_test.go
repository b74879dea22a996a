package document

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
	<title>  Acme Widgets  </title>
	<title>Second title</title>
	<meta name="description" content="Widgets for everyone">
	<meta name="keywords" content="widgets,acme">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<script src="/js/jquery.min.js"></script>
	<script>var inline = true;</script>
	<script src=" https://cdn.example.com/app.js "></script>
</head>
<body>
	<h1> Welcome </h1>
	<p>First paragraph</p>
	<div><h2>Sub heading</h2><h1>Another</h1></div>
	<a href="https://twitter.com/acme">Twitter</a>
	<a>No href</a>
	<a href="/about">About</a>
</body>
</html>`

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		htmlStr  string
		expected string
	}{
		{name: "First title trimmed", htmlStr: samplePage, expected: "Acme Widgets"},
		{name: "No title tag", htmlStr: "<html><head></head></html>", expected: ""},
		{name: "Empty title tag", htmlStr: "<html><head><title></title></head></html>", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMarkup(tt.htmlStr).Title(); got != tt.expected {
				t.Errorf("Title() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMetaContent(t *testing.T) {
	doc := FromMarkup(samplePage)

	tests := []struct {
		name     string
		meta     string
		expected string
	}{
		{name: "Description", meta: "description", expected: "Widgets for everyone"},
		{name: "Keywords", meta: "keywords", expected: "widgets,acme"},
		{name: "Missing", meta: "robots", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.MetaContent(tt.meta); got != tt.expected {
				t.Errorf("MetaContent(%q) = %q, want %q", tt.meta, got, tt.expected)
			}
		})
	}
}

func TestTextsDocumentOrder(t *testing.T) {
	doc := FromMarkup(samplePage)

	got := doc.Texts("p, h1, h2")
	want := []string{"Welcome", "First paragraph", "Sub heading", "Another"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Texts() = %v, want %v", got, want)
	}

	if got := doc.Texts("h3"); got == nil || len(got) != 0 {
		t.Errorf("Texts() for absent tag = %#v, want empty slice", got)
	}
}

func TestAttrs(t *testing.T) {
	doc := FromMarkup(samplePage)

	scripts := doc.Attrs("script[src]", "src")
	wantScripts := []string{"/js/jquery.min.js", "https://cdn.example.com/app.js"}
	if !reflect.DeepEqual(scripts, wantScripts) {
		t.Errorf("Attrs(script) = %v, want %v", scripts, wantScripts)
	}

	links := doc.Attrs("a[href]", "href")
	wantLinks := []string{"https://twitter.com/acme", "/about"}
	if !reflect.DeepEqual(links, wantLinks) {
		t.Errorf("Attrs(a) = %v, want %v", links, wantLinks)
	}
}

func TestFromMarkupEmptyInput(t *testing.T) {
	doc := FromMarkup("")
	if doc.Title() != "" {
		t.Error("Title() of empty markup should be empty")
	}
	if len(doc.Texts("p")) != 0 {
		t.Error("Texts() of empty markup should be empty")
	}
	if doc.MetaContent("description") != "" {
		t.Error("MetaContent() of empty markup should be empty")
	}
}

func TestFromNode(t *testing.T) {
	root, err := html.Parse(strings.NewReader("<p>hello</p>"))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	got := FromNode(root).Texts("p")
	if len(got) != 1 || got[0] != "hello" {
		t.Errorf("Texts() = %v, want [hello]", got)
	}
}
