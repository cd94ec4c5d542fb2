package infrastructure

import (
	"strings"

	"go.uber.org/zap"
)

// BadgerLogger implements badger.Logger on top of zap. Badger's info output
// is chatty (compactions, value log GC) so it is demoted to debug.
type BadgerLogger struct {
	logger *zap.SugaredLogger
}

// NewBadgerLogger returns a badger.Logger writing to logger.Named("badger").
func NewBadgerLogger(logger *zap.Logger) *BadgerLogger {
	return &BadgerLogger{logger: logger.Named("badger").Sugar()}
}

func (l *BadgerLogger) Errorf(format string, args ...any) {
	l.logger.Errorf(trimNewline(format), args...)
}

func (l *BadgerLogger) Warningf(format string, args ...any) {
	l.logger.Warnf(trimNewline(format), args...)
}

func (l *BadgerLogger) Infof(format string, args ...any) {
	l.logger.Debugf(trimNewline(format), args...)
}

func (l *BadgerLogger) Debugf(format string, args ...any) {
	l.logger.Debugf(trimNewline(format), args...)
}

// badger terminates most format strings with a newline.
func trimNewline(format string) string {
	return strings.TrimSuffix(format, "\n")
}
