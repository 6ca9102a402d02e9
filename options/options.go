// Package options binds gatelog configuration to command-line flags and
// viper-managed config sources.
package options

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trickstertwo/gatelog"
)

// Options contains gatelog configuration in its textual form.
type Options struct {
	// Level is the local console threshold.
	Level string `json:"level" mapstructure:"level"`
	// ServerLevel is the remote adapter threshold.
	ServerLevel string `json:"server-level" mapstructure:"server-level"`
	// ServerURL is the collector endpoint. Empty disables remote delivery
	// through the default adapter.
	ServerURL string `json:"server-url" mapstructure:"server-url"`
}

// NewOptions creates Options with everything switched off.
func NewOptions() *Options {
	return &Options{
		Level:       gatelog.LevelOff.String(),
		ServerLevel: gatelog.LevelOff.String(),
	}
}

func join(prefixes []string, name string) string {
	if len(prefixes) == 0 || prefixes[0] == "" {
		return name
	}
	return strings.TrimSuffix(prefixes[0], ".") + "." + name
}

// AddFlags adds flags for gatelog options to the specified FlagSet. An
// optional prefix namespaces the flag names, e.g. "log" gives "log.level".
func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Level, join(prefixes, "level"), o.Level, "Local log level (trace|debug|info|log|warn|error|off)")
	fs.StringVar(&o.ServerLevel, join(prefixes, "server-level"), o.ServerLevel, "Remote log level (trace|debug|info|log|warn|error|off)")
	fs.StringVar(&o.ServerURL, join(prefixes, "server-url"), o.ServerURL, "Remote log collector URL")
}

// Complete normalizes option values.
func (o *Options) Complete() error {
	o.Level = strings.TrimSpace(o.Level)
	o.ServerLevel = strings.TrimSpace(o.ServerLevel)
	o.ServerURL = strings.TrimSpace(o.ServerURL)
	if o.Level == "" {
		o.Level = gatelog.LevelOff.String()
	}
	if o.ServerLevel == "" {
		o.ServerLevel = gatelog.LevelOff.String()
	}
	return nil
}

// Validate reports every invalid field.
func (o *Options) Validate() []error {
	var errs []error
	if _, err := gatelog.ParseLevel(o.Level); err != nil {
		errs = append(errs, fmt.Errorf("level: %w", err))
	}
	if _, err := gatelog.ParseLevel(o.ServerLevel); err != nil {
		errs = append(errs, fmt.Errorf("server-level: %w", err))
	}
	if o.ServerURL != "" {
		u, err := url.Parse(o.ServerURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("server-url: %w", err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, fmt.Errorf("server-url: unsupported scheme %q", u.Scheme))
		}
	}
	return errs
}

// Load overlays values found in v onto o. Keys are the mapstructure names,
// optionally nested under key. Each key is looked up on its own so values
// bound through BindEnv or set as overrides are seen as well as file values.
func (o *Options) Load(v *viper.Viper, key ...string) error {
	prefix := ""
	if len(key) > 0 && key[0] != "" {
		prefix = strings.TrimSuffix(key[0], ".") + "."
	}
	for name, dst := range map[string]*string{
		"level":        &o.Level,
		"server-level": &o.ServerLevel,
		"server-url":   &o.ServerURL,
	} {
		if !v.IsSet(prefix + name) {
			continue
		}
		*dst = v.GetString(prefix + name)
	}
	return nil
}

// Config converts the options into a gatelog.Config.
func (o *Options) Config() (gatelog.Config, error) {
	if err := o.Complete(); err != nil {
		return gatelog.Config{}, err
	}
	local, err := gatelog.ParseLevel(o.Level)
	if err != nil {
		return gatelog.Config{}, fmt.Errorf("level: %w", err)
	}
	remote, err := gatelog.ParseLevel(o.ServerLevel)
	if err != nil {
		return gatelog.Config{}, fmt.Errorf("server-level: %w", err)
	}
	return gatelog.Config{
		Level:            local,
		ServerLogLevel:   remote,
		ServerLoggingURL: o.ServerURL,
	}, nil
}
