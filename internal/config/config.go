package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"aghctl/internal/launcher"
)

const (
	defaultCtlPath  = "/opt/AdGuardHome/AdGuardHome-ctl"
	defaultProcName = "AdGuardHome"
	defaultSelfName = "aghctl"
	defaultDiagPath = "/tmp/aghctl-diag.log"

	envCtlPath    = "AGHCTL_CTL_PATH"
	envCtlTimeout = "AGHCTL_CTL_TIMEOUT"
	envDiagLog    = "AGHCTL_DIAG_LOG"
	envDNSProbe   = "AGHCTL_DNS_PROBE"
)

// Config aggregates all tunables for the wrapper. Components receive it at
// construction rather than reading globals.
type Config struct {
	// CtlPath is the control binary invoked as `<path> start|stop|status`.
	CtlPath string
	// ProcName is the daemon process name matched by the fallback probe.
	ProcName string
	// SelfName is excluded from probe matches to avoid self-matching.
	SelfName string
	// DNSProbe is the daemon's DNS listener address. Empty disables the
	// liveness query.
	DNSProbe string
	// CtlTimeout bounds a single control-binary invocation. Zero means no
	// timeout, matching the historical behavior of blocking indefinitely.
	CtlTimeout time.Duration
	// Diag configures the optional classification/invocation log.
	Diag Diag
	// Terminals overrides the emulator preference order for relaunching.
	Terminals []launcher.Terminal
}

// Diag configures the append-only diagnostic log.
type Diag struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load builds a Config from an optional YAML file path plus environment
// overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		CtlPath:  defaultCtlPath,
		ProcName: defaultProcName,
		SelfName: defaultSelfName,
		Diag:     Diag{Path: defaultDiagPath},
	}

	if path != "" {
		if err := mergeFromFile(&cfg, path); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envCtlPath); v != "" {
		cfg.CtlPath = v
	}
	if v := os.Getenv(envDNSProbe); v != "" {
		cfg.DNSProbe = v
	}
	if v := os.Getenv(envDiagLog); v != "" {
		cfg.Diag.Enabled = true
		cfg.Diag.Path = v
	}
	if v := os.Getenv(envCtlTimeout); v != "" {
		if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
			cfg.CtlTimeout = dur
		} else if err != nil {
			log.Printf("invalid %s value %q: %v", envCtlTimeout, v, err)
		}
	}
}

type fileConfig struct {
	CtlPath    string              `yaml:"ctl_path"`
	ProcName   string              `yaml:"proc_name"`
	SelfName   string              `yaml:"self_name"`
	DNSProbe   string              `yaml:"dns_probe"`
	CtlTimeout string              `yaml:"ctl_timeout"`
	Diag       *Diag               `yaml:"diag"`
	Terminals  []launcher.Terminal `yaml:"terminals"`
}

func mergeFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.CtlPath != "" {
		cfg.CtlPath = raw.CtlPath
	}
	if raw.ProcName != "" {
		cfg.ProcName = raw.ProcName
	}
	if raw.SelfName != "" {
		cfg.SelfName = raw.SelfName
	}
	if raw.DNSProbe != "" {
		cfg.DNSProbe = raw.DNSProbe
	}
	if raw.CtlTimeout != "" {
		dur, err := time.ParseDuration(raw.CtlTimeout)
		if err != nil {
			return fmt.Errorf("parse ctl_timeout: %w", err)
		}
		if dur <= 0 {
			return errors.New("ctl_timeout must be > 0")
		}
		cfg.CtlTimeout = dur
	}
	if raw.Diag != nil {
		cfg.Diag.Enabled = raw.Diag.Enabled
		if raw.Diag.Path != "" {
			cfg.Diag.Path = raw.Diag.Path
		}
	}
	if len(raw.Terminals) > 0 {
		cfg.Terminals = raw.Terminals
	}

	return nil
}
