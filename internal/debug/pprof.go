package debug

import (
	"errors"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go.uber.org/zap"

	"competitoranalyzer/internal/log"
)

// StartPprof serves the profiling endpoints registered on the default mux.
// The returned server is already listening in the background.
func StartPprof(host string) *http.Server {
	srv := &http.Server{
		Addr:              host,
		Handler:           http.DefaultServeMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Logger.Info("pprof listening", zap.String("host", host))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Error("pprof failed", zap.Error(err))
		}
	}()

	return srv
}
