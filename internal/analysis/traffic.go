package analysis

import (
	"strings"
	"unicode/utf8"

	"competitoranalyzer/internal/model"
)

const (
	seoFloor          = 40
	seoDescriptionPts = 30
	seoKeywordsPts    = 20
	minDescriptionLen = 120
	maxDescriptionLen = 160

	socialPerLink  = 5
	socialPresence = 10
	socialCap      = 30

	paidWithAds    = 20
	paidWithoutAds = 10

	referralBaseline = 10
)

var adNetworkSignatures = []string{"adsbygoogle", "doubleclick"}

// EstimateTraffic scores each traffic source on its own. The anchor hrefs
// (second argument) are accepted so the estimator sees the same facts as the
// other analyzers; no current heuristic reads them.
func EstimateTraffic(meta model.MetaTags, _ []string, scripts, social []string) model.TrafficEstimate {
	seo := 0
	if n := utf8.RuneCountInString(meta.Description); n >= minDescriptionLen && n <= maxDescriptionLen {
		seo += seoDescriptionPts
	}
	if meta.Keywords != "" {
		seo += seoKeywordsPts
	}

	socialScore := socialPerLink * len(social)
	if len(social) > 0 {
		socialScore += socialPresence
	}

	paid := paidWithoutAds
	if hasAdScript(scripts) {
		paid = paidWithAds
	}

	return model.TrafficEstimate{
		SEO:      max(seoFloor, seo),
		Social:   min(socialCap, socialScore),
		Paid:     paid,
		Referral: referralBaseline,
	}
}

func hasAdScript(scripts []string) bool {
	for _, src := range scripts {
		for _, sig := range adNetworkSignatures {
			if strings.Contains(src, sig) {
				return true
			}
		}
	}
	return false
}
