package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"competitoranalyzer/internal/analysis"
	"competitoranalyzer/internal/cache"
	"competitoranalyzer/internal/fetcher"
	"competitoranalyzer/internal/log"
	"competitoranalyzer/internal/model"
	"competitoranalyzer/internal/util"
)

const (
	defaultCompareConcurrency = 3
	defaultMaxCompareURLs     = 5
)

var (
	ErrInvalidURL  = errors.New("invalid url")
	ErrNoURLs      = errors.New("at least one url is required")
	ErrTooManyURLs = errors.New("too many urls")
)

// PageFetcher retrieves the markup of a page together with its load time.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.Page, error)
}

type Options struct {
	CompareConcurrency int
	MaxCompareURLs     int
}

// ComparisonResult is one site of a comparison. Exactly one of Report and
// Error is set.
type ComparisonResult struct {
	URL    string        `json:"url"`
	Report *model.Report `json:"report,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// Analyzer fetches pages and turns them into reports. Reports it returns are
// shared with the cache and must not be modified.
type Analyzer struct {
	fetcher PageFetcher
	cache   *cache.ReportCache
	group   singleflight.Group
	opts    Options
	now     func() time.Time
}

func NewAnalyzer(f PageFetcher, c *cache.ReportCache, opts Options) *Analyzer {
	if opts.CompareConcurrency < 1 {
		opts.CompareConcurrency = defaultCompareConcurrency
	}
	if opts.MaxCompareURLs < 1 {
		opts.MaxCompareURLs = defaultMaxCompareURLs
	}
	if c == nil {
		c = cache.New(cache.DefaultTTL)
	}
	return &Analyzer{fetcher: f, cache: c, opts: opts, now: time.Now}
}

// AnalyzePage returns the report for targetURL, from cache when possible.
// Concurrent calls for the same URL share one fetch.
func (a *Analyzer) AnalyzePage(ctx context.Context, targetURL string) (*model.Report, error) {
	if !util.IsValidURL(targetURL) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, targetURL)
	}

	if report, ok := a.cache.Get(targetURL); ok {
		analysesTotal.WithLabelValues(resultCacheHit).Inc()
		log.Logger.Debug("report served from cache", zap.String("url", targetURL))
		return report, nil
	}

	// the shared fetch must not die with whichever caller started it
	ch := a.group.DoChan(targetURL, func() (interface{}, error) {
		return a.analyze(context.WithoutCancel(ctx), targetURL)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.Report), nil
	}
}

func (a *Analyzer) analyze(ctx context.Context, targetURL string) (*model.Report, error) {
	page, err := a.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		analysesTotal.WithLabelValues(resultError).Inc()
		return nil, err
	}
	pageLoadSeconds.Observe(page.Elapsed)

	report := analysis.Analyze(page.Markup, targetURL, page.Elapsed)
	report.AnalyzedAt = a.now().UTC()

	for _, tech := range report.TechStack {
		if tech != model.NoneDetected {
			technologiesDetected.WithLabelValues(tech).Inc()
		}
	}
	analysesTotal.WithLabelValues(resultSuccess).Inc()

	log.Logger.Info("page analyzed",
		zap.String("url", targetURL),
		zap.Int("keywords", len(report.Keywords)),
		zap.Strings("tech_stack", report.TechStack),
		zap.Float64("load_time", report.Performance.LoadTime),
	)

	a.cache.Set(targetURL, &report)
	return &report, nil
}

// Compare analyzes several competitor sites concurrently. A failing site is
// reported in its result and does not fail the comparison.
func (a *Analyzer) Compare(ctx context.Context, urls []string) ([]ComparisonResult, error) {
	switch {
	case len(urls) == 0:
		return nil, ErrNoURLs
	case len(urls) > a.opts.MaxCompareURLs:
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyURLs, len(urls), a.opts.MaxCompareURLs)
	}

	results := make([]ComparisonResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.CompareConcurrency)

	for i, u := range urls {
		g.Go(func() error {
			results[i].URL = u
			report, err := a.AnalyzePage(gctx, u)
			if err != nil {
				log.Logger.Warn("comparison entry failed", zap.String("url", u), zap.Error(err))
				results[i].Error = err.Error()
				return nil
			}
			results[i].Report = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
