package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatJSON emits structured records for log aggregation.
	FormatJSON Format = "json"
	// FormatText emits human-readable records for development.
	FormatText Format = "text"
)

// Config holds logger settings, loadable from the environment through the
// config package.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format Format     `env:"LOG_FORMAT" envDefault:"json"`
}

type settings struct {
	level   slog.Level
	format  Format
	output  io.Writer
	attrs   []slog.Attr
	options *slog.HandlerOptions
}

// Option configures logger creation.
type Option func(*settings)

// WithLevel sets the minimum level records must meet to be emitted.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat sets the output encoding. Invalid formats panic to fail fast
// on misconfiguration rather than logging in a surprise shape at runtime.
func WithFormat(f Format) Option {
	return func(s *settings) {
		switch f {
		case FormatJSON, FormatText:
			s.format = f
		default:
			panic(fmt.Errorf("logger: invalid format %q, must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput redirects log output. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttrs adds static attributes to every record.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// WithHandlerOptions overrides the slog handler options wholesale. Nil
// options are ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(s *settings) {
		if opts != nil {
			s.options = opts
		}
	}
}

// WithConfig applies level and format from a Config, typically one loaded
// from the environment.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.level = cfg.Level
		if cfg.Format == FormatText {
			s.format = FormatText
		}
	}
}

// WithDevelopment switches to readable text output at debug level and tags
// records with the service name.
func WithDevelopment(service string) Option {
	return func(s *settings) {
		s.level = slog.LevelDebug
		s.format = FormatText
		if service != "" {
			s.attrs = append(s.attrs, slog.String("service", service))
		}
	}
}

// New creates a configured slog.Logger. Defaults are production-safe: JSON
// records at info level on stdout.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	handlerOpts := s.options
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: s.level}
	}

	var handler slog.Handler
	if s.format == FormatText {
		handler = slog.NewTextHandler(s.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(s.output, handlerOpts)
	}
	if len(s.attrs) > 0 {
		handler = handler.WithAttrs(s.attrs)
	}

	return slog.New(handler)
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Error creates an attribute for a single error under the key "error".
// A nil error yields an empty attribute that slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}
