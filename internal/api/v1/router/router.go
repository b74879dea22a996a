package router

import (
	"net/http"

	"competitoranalyzer/internal/api/v1/handler"
	"competitoranalyzer/internal/api/v1/middleware"
	"competitoranalyzer/internal/log"
	"competitoranalyzer/pkg/response"
)

const (
	appName    = "competitoranalyzer"
	apiVersion = "v1"
	BasePath   = "/" + appName + "/api/" + apiVersion
)

type Options struct {
	BasicAuthUser string
	BasicAuthPass string
	Limiter       *middleware.RateLimiter
}

func New(h *handler.Handler, opts Options) http.Handler {
	mux := http.NewServeMux()

	register := func(method, path string, hf http.Handler) {
		mux.Handle(method+" "+BasePath+path, hf)
	}

	register(http.MethodGet, "/health", http.HandlerFunc(h.Health))
	register(http.MethodGet, "/analyze", http.HandlerFunc(h.Analyze))
	register(http.MethodPost, "/compare", http.HandlerFunc(h.Compare))
	register(http.MethodGet, "/export", http.HandlerFunc(h.Export))
	register(http.MethodPost, "/feedback", http.HandlerFunc(h.SubmitFeedback))
	register(http.MethodGet, "/feedback",
		middleware.BasicAuth(opts.BasicAuthUser, opts.BasicAuthPass)(http.HandlerFunc(h.ListFeedback)))

	var next http.Handler = mux
	if opts.Limiter != nil {
		next = opts.Limiter.Middleware(next)
	}

	return middleware.RecoverPanic(
		log.Logger,
		func(w http.ResponseWriter, r *http.Request, err error) {
			response.Error(w, http.StatusInternalServerError, "internal server error")
		},
		middleware.SecureHeaders(
			middleware.Logging(
				middleware.Metrics(
					middleware.CORS(next),
				),
			),
		),
	)
}

func NewMetricsRouter() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", handler.MetricsHandler())
	return mux
}
