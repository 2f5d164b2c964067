package static

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
)

const (
	DefaultHost  = "0.0.0.0"
	DefaultPort  = 5000
	DefaultIndex = "index.html"

	DefaultReadTimeout = 30 * time.Second
	DefaultIdleTimeout = 60 * time.Second
)

type Options struct {
	Host string
	Port int

	// Root is the serving root. It is fixed for the lifetime of the server.
	Root  string
	Index string

	// Stdout receives the banner, access log and shutdown notice.
	Stdout io.Writer
	Logger *slog.Logger

	Clock func() time.Time

	ReadTimeout time.Duration
	IdleTimeout time.Duration
}

func (o *Options) setDefaults() {
	if o.Host == "" {
		o.Host = DefaultHost
	}

	if o.Port == 0 {
		o.Port = DefaultPort
	}

	if o.Index == "" {
		o.Index = DefaultIndex
	}

	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	if o.Clock == nil {
		o.Clock = time.Now
	}

	if o.ReadTimeout == 0 {
		o.ReadTimeout = DefaultReadTimeout
	}

	if o.IdleTimeout == 0 {
		o.IdleTimeout = DefaultIdleTimeout
	}
}

func (o *Options) validate() error {
	var result error

	if o.Root == "" {
		result = multierror.Append(result, errors.New("root directory missing"))
	} else if info, err := os.Stat(o.Root); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid root directory: %w", err))
	} else if !info.IsDir() {
		result = multierror.Append(result, fmt.Errorf("root is not a directory: %s", o.Root))
	}

	if o.Port < 1 || o.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("invalid port: %d", o.Port))
	}

	return result
}
