package log

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It is a no-op until InitLogger runs.
var Logger = zap.NewNop()

// InitLogger builds a development logger when dev is set and a JSON
// production logger otherwise.
func InitLogger(dev bool) {
	var (
		l   *zap.Logger
		err error
	)
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Logger = l.Named("competitoranalyzer")
}

func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
