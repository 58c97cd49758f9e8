package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dicklesworthstone/sysmoni/internal/sampler"
)

// Config carries runtime options for sysmoni.
type Config struct {
	Interval    time.Duration
	Sort        string
	Filter      string
	JSON        bool
	JSONStream  bool
	MetricsAddr string
	LogLevel    string
	WithEnviron bool

	EnableNet    bool
	EnableProcs  bool
	EnableDisks  bool
	EnableDiskIO bool
	EnableTemps  bool
}

func Default() Config {
	return Config{
		Interval:    time.Second,
		Sort:        "cpu",
		Filter:      "",
		LogLevel:    "warn",
		EnableNet:    true,
		EnableProcs:  true,
		EnableDisks:  true,
		EnableDiskIO: true,
		EnableTemps:  true,
	}
}

// FromFlags parses flags and then applies SYSMONI_* environment overrides.
// The result is validated.
func FromFlags(args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("sysmoni", flag.ContinueOnError)
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "refresh interval")
	fs.StringVar(&cfg.Sort, "sort", cfg.Sort, "sort column: cpu|mem|pid|name")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "regex filter for process names")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "output one-shot JSON and exit")
	fs.BoolVar(&cfg.JSONStream, "json-stream", cfg.JSONStream, "stream NDJSON until interrupted")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	fs.BoolVar(&cfg.WithEnviron, "environ", cfg.WithEnviron, "read process environments")
	fs.BoolVar(&cfg.EnableNet, "net", cfg.EnableNet, "enable network sampling")
	fs.BoolVar(&cfg.EnableProcs, "procs", cfg.EnableProcs, "enable process sampling")
	fs.BoolVar(&cfg.EnableDisks, "disks", cfg.EnableDisks, "enable disk sampling")
	fs.BoolVar(&cfg.EnableDiskIO, "diskio", cfg.EnableDiskIO, "enable disk throughput sampling")
	fs.BoolVar(&cfg.EnableTemps, "temps", cfg.EnableTemps, "enable temperature sampling")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if v := os.Getenv("SYSMONI_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Interval = parsed
		} else if parsed, err2 := time.ParseDuration(v + "s"); err2 == nil {
			cfg.Interval = parsed
		}
	}
	if v := os.Getenv("SYSMONI_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("SYSMONI_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if os.Getenv("SYSMONI_NET") == "0" {
		cfg.EnableNet = false
	}
	if os.Getenv("SYSMONI_PROCS") == "0" {
		cfg.EnableProcs = false
	}
	if os.Getenv("SYSMONI_DISKS") == "0" {
		cfg.EnableDisks = false
	}
	if os.Getenv("SYSMONI_DISKIO") == "0" {
		cfg.EnableDiskIO = false
	}
	if os.Getenv("SYSMONI_TEMPS") == "0" {
		cfg.EnableTemps = false
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid option at once.
func (c Config) Validate() error {
	var errs []error
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", c.Interval))
	}
	switch c.Sort {
	case "cpu", "mem", "pid", "name":
	default:
		errs = append(errs, fmt.Errorf("unknown sort column %q", c.Sort))
	}
	if c.Filter != "" {
		if _, err := regexp.Compile(c.Filter); err != nil {
			errs = append(errs, fmt.Errorf("filter: %w", err))
		}
	}
	if c.JSON && c.JSONStream {
		errs = append(errs, errors.New("json and json-stream are mutually exclusive"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return lvl, nil
}

// Selection maps the subsystem toggles onto a sampler refresh selection.
// CPU, memory and system are always sampled.
func (c Config) Selection() sampler.Selection {
	sel := sampler.All()
	sel.Network = c.EnableNet
	sel.Processes = c.EnableProcs
	sel.Disks = c.EnableDisks
	sel.DiskIO = c.EnableDiskIO
	sel.Components = c.EnableTemps
	return sel
}
