package analysis

import (
	"regexp"

	"competitoranalyzer/internal/model"
)

var viewportPattern = regexp.MustCompile(`(?i)viewport.*width=device-width`)

// EvaluatePerformance passes the measured load time through and flags the
// page as mobile friendly when it declares a device-width viewport.
func EvaluatePerformance(markup string, elapsed float64) model.PerformanceMetrics {
	return model.PerformanceMetrics{
		LoadTime:       elapsed,
		MobileFriendly: viewportPattern.MatchString(markup),
	}
}
