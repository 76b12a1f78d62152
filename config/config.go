// Package config loads watchface settings from an HCL file.
//
// Example:
//
//	theme          = "mono"
//	log_level      = "debug"
//	listen         = ":8443"
//	metrics_listen = ":9100"
//	tick_interval  = "1s"
//	ntp_server     = "pool.ntp.org"
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/satindergrewal/watchface"
)

// File is the decoded configuration. Every attribute is optional.
type File struct {
	Theme         string `hcl:"theme,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	Listen        string `hcl:"listen,optional"`
	MetricsListen string `hcl:"metrics_listen,optional"`
	TickInterval  string `hcl:"tick_interval,optional"`
	NTPServer     string `hcl:"ntp_server,optional"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes data. The filename's extension selects HCL or JSON syntax.
func Parse(filename string, data []byte) (*File, error) {
	var f File
	if err := hclsimple.Decode(filename, data, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &f, nil
}

// Face returns the face configuration described by f, starting from
// watchface.DefaultConfig.
func (f *File) Face() (watchface.Config, error) {
	cfg := watchface.DefaultConfig()
	if f == nil {
		return cfg, nil
	}
	if f.Theme != "" {
		theme, err := watchface.ThemeByName(f.Theme)
		if err != nil {
			return cfg, err
		}
		cfg.Theme = theme
	}
	if f.TickInterval != "" {
		d, err := time.ParseDuration(f.TickInterval)
		if err != nil {
			return cfg, fmt.Errorf("tick_interval: %w", err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("tick_interval must be positive, got %s", d)
		}
		cfg.TickInterval = d
	}
	return cfg, nil
}
