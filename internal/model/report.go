package model

import "time"

// NoneDetected stands in for an empty tech stack or backlink sample.
const NoneDetected = "None detected"

type MetaTags struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

type KeywordStat struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// TrafficEstimate holds independent heuristic percentages. They are not
// shares of a whole and need not sum to 100.
type TrafficEstimate struct {
	SEO      int `json:"seo"`
	Social   int `json:"social"`
	Paid     int `json:"paid"`
	Referral int `json:"referral"`
}

type PerformanceMetrics struct {
	LoadTime       float64 `json:"load_time"`
	MobileFriendly bool    `json:"mobile_friendly"`
}

// Report is the competitive-analysis result for one page. Slice fields are
// never nil.
type Report struct {
	URL         string             `json:"url"`
	MetaTags    MetaTags           `json:"meta_tags"`
	H1s         []string           `json:"h1s"`
	Keywords    []KeywordStat      `json:"keywords"`
	TechStack   []string           `json:"tech_stack"`
	Traffic     TrafficEstimate    `json:"traffic"`
	Performance PerformanceMetrics `json:"performance"`
	Backlinks   []string           `json:"backlinks"`
	SocialLinks []string           `json:"social_links"`
	AnalyzedAt  time.Time          `json:"analyzed_at,omitempty"`
}
