package gatelog

import "sync/atomic"

// Facade helpers over the global Logger.
// Usage: gatelog.Warn("disk almost full", usage)

var global atomic.Pointer[Logger]

// offLogger serves L() until SetGlobal is called: no configuration means
// both paths are off.
var offLogger = newLogger(DefaultConfig(), discardConsole{}, PlainFormatter{}, nil, nil, nil, defaultErrorHandler)

// SetGlobal sets the global Logger. nil restores the everything-off logger.
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger.
func L() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return offLogger
}

// Use builds a Logger from cfg plus any builder customisation, sets it as
// global and returns it.
func Use(cfg Config, customize ...func(*Builder)) (*Logger, error) {
	b := NewBuilder().WithConfig(cfg)
	for _, f := range customize {
		f(b)
	}
	l, err := b.Build()
	if err != nil {
		return nil, err
	}
	SetGlobal(l)
	return l, nil
}

func Trace(message any, extras ...any) { L().dispatch(LevelTrace, true, message, extras) }
func Debug(message any, extras ...any) { L().dispatch(LevelDebug, true, message, extras) }
func Info(message any, extras ...any)  { L().dispatch(LevelInfo, true, message, extras) }
func Log(message any, extras ...any)   { L().dispatch(LevelLog, true, message, extras) }
func Warn(message any, extras ...any)  { L().dispatch(LevelWarn, true, message, extras) }
func Error(message any, extras ...any) { L().dispatch(LevelError, true, message, extras) }

// SetStorageMethod replaces the adapter of the global Logger.
func SetStorageMethod(a Adapter) { L().SetStorageMethod(a) }
