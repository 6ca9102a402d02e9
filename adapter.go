package gatelog

import "context"

// Adapter persists or forwards a finished Record (Strategy). Exactly one
// adapter is active per Logger; see (*Logger).SetStorageMethod.
type Adapter interface {
	Save(rec Record)
}

// AdapterFunc lets a plain function act as an Adapter.
type AdapterFunc func(Record)

func (f AdapterFunc) Save(rec Record) { f(rec) }

// Transport is the remote collector client used by the default adapter.
// Send may block; the default adapter always calls it off the caller's goroutine.
// The returned value is attached to the success self-report.
type Transport interface {
	Send(ctx context.Context, endpoint string, rec Record) (any, error)
}

type TransportFunc func(ctx context.Context, endpoint string, rec Record) (any, error)

func (f TransportFunc) Send(ctx context.Context, endpoint string, rec Record) (any, error) {
	return f(ctx, endpoint, rec)
}

// Self-report messages of the default adapter.
const (
	MsgServerLogged = "Server logging successful"
	MsgServerFailed = "FAILED TO LOG ON SERVER"
)

// adapterSlot is swapped atomically; remote marks the built-in adapter,
// which is disabled when no endpoint is configured.
type adapterSlot struct {
	a      Adapter
	remote bool
}

// remoteAdapter forwards records through the Transport and reports the
// outcome back into the owning Logger.
type remoteAdapter struct {
	l *Logger
}

func (r remoteAdapter) Save(rec Record) {
	l := r.l
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()
		res, err := l.send(rec)
		if err != nil {
			l.dispatch(LevelError, false, MsgServerFailed, []any{err})
			return
		}
		l.dispatch(LevelTrace, false, MsgServerLogged, []any{res})
	}()
}
