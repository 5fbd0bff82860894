package metadata

import "go.uber.org/zap"

// logger is the loader's narrow diagnostic sink. It wraps *zap.Logger
// behind newLogger so call sites don't need a nil check: a nil logger
// passed to NewCache is normalized to zap.NewNop() there.
type logger struct {
	*zap.Logger
}

func newLogger(l *zap.Logger) logger {
	if l == nil {
		l = zap.NewNop()
	}
	return logger{l}
}

// malformedPattern records that a metadata regex was coerced to "never
// matches" rather than failing the load, per spec.md §7.
func (l logger) malformedPattern(pattern string) {
	l.Debug("metadata: coercing malformed regex to non-matching", zap.String("pattern", pattern))
}
