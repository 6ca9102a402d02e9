package gatelog

import (
	"os"
	"sync"
)

var (
	defaultTransportMu      sync.RWMutex
	defaultTransportFactory func() Transport
)

// RegisterDefaultTransport registers the constructor Build uses when no
// Transport was supplied. Transport packages call it from init() to avoid
// import cycles, e.g. a blank import of
// github.com/trickstertwo/gatelog/transport/http.
func RegisterDefaultTransport(f func() Transport) {
	defaultTransportMu.Lock()
	defer defaultTransportMu.Unlock()
	defaultTransportFactory = f
}

func newDefaultTransport() Transport {
	defaultTransportMu.RLock()
	f := defaultTransportFactory
	defaultTransportMu.RUnlock()
	if f == nil {
		return nil
	}
	return f()
}

// Env:
//
//	GATELOG_LEVEL        : local threshold (trace|debug|info|log|warn|error|off)
//	GATELOG_SERVER_LEVEL : remote threshold
//	GATELOG_SERVER_URL   : remote collector endpoint
//
// Unset or unparsable levels fall back to OFF.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if l, err := ParseLevel(os.Getenv("GATELOG_LEVEL")); err == nil {
		cfg.Level = l
	}
	if l, err := ParseLevel(os.Getenv("GATELOG_SERVER_LEVEL")); err == nil {
		cfg.ServerLogLevel = l
	}
	cfg.ServerLoggingURL = os.Getenv("GATELOG_SERVER_URL")
	return cfg
}
