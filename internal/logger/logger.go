// Package logger is a leveled wrapper over the standard logger. Each line
// starts with its level tag.
package logger

import (
	"fmt"
	"log"
	"strings"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

var levelTags = [...]string{
	DEBUG:   "[DEBUG]",
	INFO:    "[INFO]",
	WARNING: "[WARN]",
	ERROR:   "[ERROR]",
}

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
}

func New(level int) *defaultLogger {
	return &defaultLogger{level: level}
}

// ParseLevel maps a config value such as "info" or "WARN" to a level.
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "silence", "off":
		return SILENCE, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

func (l *defaultLogger) logf(level int, msg string, a ...any) {
	if l.level > level {
		return
	}
	log.Printf("%s %s", levelTags[level], fmt.Sprintf(msg, a...))
}

func (l *defaultLogger) Debugf(msg string, a ...any) { l.logf(DEBUG, msg, a...) }

func (l *defaultLogger) Infof(msg string, a ...any) { l.logf(INFO, msg, a...) }

func (l *defaultLogger) Warnf(msg string, a ...any) { l.logf(WARNING, msg, a...) }

func (l *defaultLogger) Errorf(msg string, a ...any) { l.logf(ERROR, msg, a...) }
