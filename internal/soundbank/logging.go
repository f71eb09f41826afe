package soundbank

import (
	"log/slog"
	"sync"

	"github.com/aukio/soundbank/internal/logging"
)

var (
	serviceLogger *slog.Logger
	loggerOnce    sync.Once
)

// getLogger returns the soundbank service logger.
func getLogger() *slog.Logger {
	loggerOnce.Do(func() {
		serviceLogger = logging.ForService("soundbank")
	})
	return serviceLogger
}
