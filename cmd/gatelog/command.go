package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kataras/golog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trickstertwo/gatelog"
	gologadapter "github.com/trickstertwo/gatelog/adapter/golog"
	slogadapter "github.com/trickstertwo/gatelog/adapter/slog"
	zapadapter "github.com/trickstertwo/gatelog/adapter/zap"
	zerologadapter "github.com/trickstertwo/gatelog/adapter/zerolog"
	"github.com/trickstertwo/gatelog/internal/json"
	"github.com/trickstertwo/gatelog/options"
	_ "github.com/trickstertwo/gatelog/transport/http"
)

const (
	envPrefix = "GATELOG"
	logKey    = "log"
)

var consoles = []string{"terminal", "zap", "zerolog", "slog", "golog"}

func newCommand(out, errOut io.Writer) *cobra.Command {
	opts := options.NewOptions()
	v := viper.New()
	var (
		configFile  string
		consoleName string
	)

	cmd := &cobra.Command{
		Use:           "gatelog [flags] <level> <message> [extra...]",
		Short:         "Emit one gatelog record to the console and the remote collector",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, v, configFile, opts); err != nil {
				return err
			}
			if errs := opts.Validate(); len(errs) > 0 {
				return errors.Join(errs...)
			}
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			level, err := gatelog.ParseLevel(args[0])
			if err != nil {
				return err
			}
			console, err := newConsole(consoleName, out, errOut)
			if err != nil {
				return err
			}

			l, err := gatelog.NewBuilder().WithConfig(cfg).WithConsole(console).Build()
			if err != nil {
				return err
			}
			emit(l, level, args[1], decodeExtras(args[2:]))
			l.Wait()
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&configFile, "config", "c", "", "Path to config file (keys under \"log\")")
	fs.StringVar(&consoleName, "console", "terminal", "Console backend ("+strings.Join(consoles, "|")+")")
	opts.AddFlags(fs)
	return cmd
}

// loadConfig layers config file and GATELOG_* environment under the flags
// the user actually set.
func loadConfig(cmd *cobra.Command, v *viper.Viper, configFile string, opts *options.Options) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, name := range []string{"level", "server-level", "server-url"} {
		_ = v.BindEnv(logKey+"."+name, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(name, "-", "_")))
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			v.Set(logKey+"."+name, f.Value.String())
		}
	}
	if err := opts.Load(v, logKey); err != nil {
		return err
	}
	return opts.Complete()
}

func newConsole(name string, out, errOut io.Writer) (gatelog.Console, error) {
	switch strings.ToLower(name) {
	case "", "terminal":
		return gatelog.NewTerminalConsole(out, errOut), nil
	case "zap":
		return zapadapter.New(zapadapter.NewZap(zapadapter.Config{Writer: out})), nil
	case "zerolog":
		return zerologadapter.New(zerolog.New(out).Level(zerolog.TraceLevel)), nil
	case "slog":
		return slogadapter.NewJSON(out), nil
	case "golog":
		return gologadapter.New(golog.New().SetOutput(out).SetTimeFormat("").SetLevel("info")), nil
	default:
		return nil, fmt.Errorf("unknown console %q (want %s)", name, strings.Join(consoles, "|"))
	}
}

// decodeExtras turns JSON-looking arguments into structured values so they
// are serialized as such; anything else stays a string.
func decodeExtras(args []string) []any {
	extras := make([]any, len(args))
	for i, a := range args {
		extras[i] = a
		s := strings.TrimSpace(a)
		if s == "" || (s[0] != '{' && s[0] != '[') || !json.Valid([]byte(s)) {
			continue
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			extras[i] = decoded
		}
	}
	return extras
}

func emit(l *gatelog.Logger, level gatelog.Level, message string, extras []any) {
	switch level {
	case gatelog.LevelTrace:
		l.Trace(message, extras...)
	case gatelog.LevelDebug:
		l.Debug(message, extras...)
	case gatelog.LevelInfo:
		l.Info(message, extras...)
	case gatelog.LevelLog:
		l.Log(message, extras...)
	case gatelog.LevelWarn:
		l.Warn(message, extras...)
	case gatelog.LevelError:
		l.Error(message, extras...)
	}
}
