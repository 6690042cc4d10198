package grain

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newSilentLogger())
}

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger installs the logger used by the package. By default nothing is
// logged. Passing nil restores the silent default. Safe for concurrent use.
//
// Levels used:
//   - Debug: per-plane buffer allocation
//   - Info: filter constructed (format, parameters, kernel)
//   - Warn: frame rate unknown, offset table size falls back
//   - Error: construction rejected
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newSilentLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger in use.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
