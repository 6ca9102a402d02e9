package gatelog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// Logger is the dispatch engine. Each call is evaluated independently
// against the remote and the local threshold.
type Logger struct {
	cfg       Config
	console   Console
	formatter Formatter
	transport Transport
	clock     xclock.Clock
	onError   ErrorHandler

	slot     atomic.Pointer[adapterSlot]
	inflight sync.WaitGroup
}

func newLogger(cfg Config, console Console, f Formatter, t Transport, a Adapter, clock xclock.Clock, onError ErrorHandler) *Logger {
	l := &Logger{
		cfg:       cfg,
		console:   console,
		formatter: f,
		transport: t,
		clock:     clock,
		onError:   onError,
	}
	l.SetStorageMethod(a)
	return l
}

func (l *Logger) Trace(message any, extras ...any) { l.dispatch(LevelTrace, true, message, extras) }
func (l *Logger) Debug(message any, extras ...any) { l.dispatch(LevelDebug, true, message, extras) }
func (l *Logger) Info(message any, extras ...any)  { l.dispatch(LevelInfo, true, message, extras) }
func (l *Logger) Log(message any, extras ...any)   { l.dispatch(LevelLog, true, message, extras) }
func (l *Logger) Warn(message any, extras ...any)  { l.dispatch(LevelWarn, true, message, extras) }
func (l *Logger) Error(message any, extras ...any) { l.dispatch(LevelError, true, message, extras) }

// SetStorageMethod replaces the active adapter for all subsequent calls.
// Passing nil restores the default remote adapter.
func (l *Logger) SetStorageMethod(a Adapter) {
	if a == nil {
		l.slot.Store(&adapterSlot{a: remoteAdapter{l: l}, remote: true})
		return
	}
	l.slot.Store(&adapterSlot{a: a})
}

// Config returns the configuration the Logger was built with.
func (l *Logger) Config() Config { return l.cfg }

// Enabled reports whether a message at level reaches the console.
func (l *Logger) Enabled(level Level) bool { return level.Passes(l.cfg.Level) }

// RemoteEnabled reports whether a message at level reaches the active adapter.
func (l *Logger) RemoteEnabled(level Level) bool {
	if l.slot.Load().remote && l.cfg.ServerLoggingURL == "" {
		return false
	}
	return level.Passes(l.cfg.ServerLogLevel)
}

// Wait blocks until every remote send started by the default adapter has
// completed and reported its outcome.
func (l *Logger) Wait() { l.inflight.Wait() }

func (l *Logger) dispatch(level Level, toServer bool, message any, extras []any) {
	if isFalsy(message) {
		return
	}
	if toServer {
		l.saveLog(level, message, extras)
	}
	if !level.Passes(l.cfg.Level) {
		return
	}
	l.print(level, message, extras)
}

func (l *Logger) saveLog(level Level, message any, extras []any) {
	slot := l.slot.Load()
	if slot.remote && l.cfg.ServerLoggingURL == "" {
		return
	}
	if !level.Passes(l.cfg.ServerLogLevel) {
		return
	}
	msg, ex := serializeForServer(message, extras)
	rec := Record{
		Level:     level,
		Message:   msg,
		Extras:    ex,
		Timestamp: formatTimestamp(l.now()),
	}
	defer l.recoverTo("adapter")
	slot.a.Save(rec)
}

func (l *Logger) print(level Level, message any, extras []any) {
	msg, ex := serializeForConsole(message, extras)
	defer l.recoverTo("console")
	l.console.Print(l.formatter.Render(level, msg, ex, l.now()))
}

func (l *Logger) send(rec Record) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("panic in transport: %v", r)
		}
	}()
	if l.transport == nil {
		return nil, ErrNoTransport
	}
	return l.transport.Send(context.Background(), l.cfg.ServerLoggingURL, rec)
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

func (l *Logger) recoverTo(stage string) {
	if r := recover(); r != nil {
		l.onError(fmt.Errorf("panic in %s: %v", stage, r))
	}
}
