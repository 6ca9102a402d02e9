package gatelog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a totally ordered severity. LevelOff is only meaningful as a
// threshold: no message is ever emitted at it.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelLog
	LevelWarn
	LevelError
	LevelOff
)

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelLog:   "LOG",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelOff:   "OFF",
}

func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool { return l >= LevelTrace && l <= LevelOff }

// Passes reports whether a message at l clears threshold.
func (l Level) Passes(threshold Level) bool {
	return l < LevelOff && l >= threshold
}

// ParseLevel accepts level names case-insensitively, "warning" and the ordinal digits.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "LOG":
		return LevelLog, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "OFF":
		return LevelOff, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return LevelOff, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(levelNames[l]), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
