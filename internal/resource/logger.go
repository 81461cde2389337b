package resource

import "log"

// Logger is the sink the handler reports to
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Log level prefixes
const (
	levelInfo  = "INFO "
	levelWarn  = "WARN "
	levelFatal = "FATAL "
)

type stdLogger struct {
	l *log.Logger
}

// NewStdLogger adapts a standard library logger. Fatalf only logs; it never exits.
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}
	return &stdLogger{l: l}
}

func (s *stdLogger) Infof(format string, args ...any) {
	s.l.Printf(levelInfo+format, args...)
}

func (s *stdLogger) Warnf(format string, args ...any) {
	s.l.Printf(levelWarn+format, args...)
}

func (s *stdLogger) Fatalf(format string, args ...any) {
	s.l.Printf(levelFatal+format, args...)
}
