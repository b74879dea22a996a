package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"competitoranalyzer/internal/export"
	"competitoranalyzer/internal/feedback"
	"competitoranalyzer/internal/fetcher"
	"competitoranalyzer/internal/log"
	"competitoranalyzer/internal/model"
	"competitoranalyzer/internal/service"
	"competitoranalyzer/internal/util"
	"competitoranalyzer/pkg/response"
)

const maxBodyBytes = 1 << 20

type ReportAnalyzer interface {
	AnalyzePage(ctx context.Context, url string) (*model.Report, error)
	Compare(ctx context.Context, urls []string) ([]service.ComparisonResult, error)
}

type FeedbackStore interface {
	Add(rating int, comment string) (feedback.Entry, error)
	List() []feedback.Entry
}

type Handler struct {
	analyzer ReportAnalyzer
	feedback FeedbackStore
}

func New(analyzer ReportAnalyzer, store FeedbackStore) *Handler {
	return &Handler{analyzer: analyzer, feedback: store}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "ok"}, "")
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	report, ok := h.reportFor(w, r)
	if !ok {
		return
	}
	response.Success(w, report, "estimates are heuristic-based")
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	report, ok := h.reportFor(w, r)
	if !ok {
		return
	}

	body, err := export.Render(report, format)
	if err != nil {
		log.Logger.Error("failed to render report", zap.String("url", report.URL), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to render report")
		return
	}
	response.Attachment(w, format.ContentType(), format.Filename(), body)
}

type compareRequest struct {
	URLs []string `json:"urls"`
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.analyzer.Compare(r.Context(), req.URLs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoURLs), errors.Is(err, service.ErrTooManyURLs):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.Error(w, statusFor(err), fmt.Sprintf("failed to compare pages: %v", err))
		}
		return
	}

	response.Success(w, results, "")
}

type feedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.feedback.Add(req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, feedback.ErrInvalidRating) {
			response.Error(w, http.StatusBadRequest, "please provide a rating between 1 and 5")
			return
		}
		log.Logger.Error("failed to store feedback", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to store feedback")
		return
	}

	response.Created(w, entry, "thank you for your feedback")
}

func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.feedback.List(), "")
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// reportFor validates the url query parameter and analyzes it, writing the
// error response itself when it fails.
func (h *Handler) reportFor(w http.ResponseWriter, r *http.Request) (*model.Report, bool) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" {
		response.Error(w, http.StatusBadRequest, "missing 'url' query parameter")
		return nil, false
	}

	if !util.IsValidURL(url) {
		response.Error(w, http.StatusBadRequest, "invalid 'url' format, e.g. https://example.com")
		return nil, false
	}

	report, err := h.analyzer.AnalyzePage(r.Context(), url)
	if err != nil {
		response.Error(w, statusFor(err), fmt.Sprintf("failed to analyze page: %v", err))
		return nil, false
	}
	return report, true
}

func statusFor(err error) int {
	msg := err.Error()
	switch {
	case errors.Is(err, service.ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, fetcher.ErrUnexpectedStatus),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "timeout"):
		return http.StatusBadGateway
	case strings.Contains(msg, "service unavailable"):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
