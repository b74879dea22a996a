package analysis

import "competitoranalyzer/internal/model"

// TechRule names a technology and the signatures that reveal it.
type TechRule struct {
	Name     string
	Matchers []Matcher
}

// TechRules is checked in order; results keep this order.
var TechRules = []TechRule{
	{Name: "WordPress", Matchers: []Matcher{
		Literal{Text: "wp-content"},
		MustPattern(`(?i)<meta name="generator" content="WordPress`),
	}},
	{Name: "Drupal", Matchers: []Matcher{
		Literal{Text: "drupal.js"},
		MustPattern(`(?i)<meta name="generator" content="Drupal`),
	}},
	{Name: "Joomla", Matchers: []Matcher{
		MustPattern(`(?i)<meta name="generator" content="Joomla`),
	}},
	{Name: "jQuery", Matchers: []Matcher{
		MustPattern(`(?i)jquery.*\.min\.js`),
	}},
	{Name: "React", Matchers: []Matcher{
		MustPattern(`(?i)react.*\.production\.min\.js`),
	}},
	{Name: "Bootstrap", Matchers: []Matcher{
		MustPattern(`(?i)bootstrap.*\.min\.css`),
		MustPattern(`(?i)class=".*btn.*"`),
	}},
	{Name: "Tailwind", Matchers: []Matcher{
		MustPattern(`tw-[\w-]+`),
	}},
	{Name: "Google Analytics", Matchers: []Matcher{
		Literal{Text: "gtag.js"},
		MustPattern(`(?i)UA-\d+`),
	}},
	{Name: "Hotjar", Matchers: []Matcher{
		MustPattern(`(?i)hotjar.*\.js`),
	}},
}

// DetectTechnologies matches TechRules against the markup and every script
// source.
func DetectTechnologies(markup string, scripts []string) []string {
	return detectWith(TechRules, markup, scripts)
}

func detectWith(rules []TechRule, markup string, scripts []string) []string {
	detected := make([]string, 0, len(rules))
	for _, rule := range rules {
		if rule.matches(markup, scripts) {
			detected = append(detected, rule.Name)
		}
	}
	if len(detected) == 0 {
		return []string{model.NoneDetected}
	}
	return detected
}

func (r TechRule) matches(markup string, scripts []string) bool {
	for _, m := range r.Matchers {
		if m.Match(markup) {
			return true
		}
		for _, src := range scripts {
			if m.Match(src) {
				return true
			}
		}
	}
	return false
}
