// Package config provides configuration management.
//
// The engine reads a single HCL file. A missing file is not an error
// (built-in defaults apply); a present-but-unparseable file is fatal.
package config

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"landed-cost/internal/errors"
	"landed-cost/internal/logging"
)

// EnvConfigPath names the environment variable that overrides the
// config file location.
const EnvConfigPath = "LANDED_COST_CONFIG"

// Config is the main application configuration
type Config struct {
	// Server contains HTTP server settings
	Server *ServerConfig `hcl:"server,block"`

	// Logging contains logging settings
	Logging *LoggingConfig `hcl:"logging,block"`

	// Data contains reference data file overrides
	Data *DataConfig `hcl:"data,block"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `hcl:"addr,optional"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
	Output string `hcl:"output,optional"`
}

// DataConfig names the reference data files. Every path is optional;
// an empty path means the built-in table ships with the binary.
// Files may be JSON or YAML, selected by extension. The denylist
// additionally accepts CSV.
type DataConfig struct {
	Tariffs         string `hcl:"tariffs,optional"`
	Freight         string `hcl:"freight,optional"`
	Compliance      string `hcl:"compliance,optional"`
	MarketplaceFees string `hcl:"marketplace_fees,optional"`
	CogsBenchmarks  string `hcl:"cogs_benchmarks,optional"`
	Denylist        string `hcl:"denylist,optional"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Server:  &ServerConfig{Addr: ":8080"},
		Logging: &LoggingConfig{Level: "info", Format: "console", Output: "stderr"},
		Data:    &DataConfig{},
	}
}

// Load loads configuration from a file. A missing file yields the
// defaults; a corrupt file yields a configuration error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	cfg := &Config{}
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "cannot parse config file %s", path)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Server == nil {
		c.Server = def.Server
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Logging == nil {
		c.Logging = def.Logging
	}
	if c.Data == nil {
		c.Data = def.Data
	}
}

// LogConfig converts the logging block to the logging package config
func (c *Config) LogConfig() logging.Config {
	lc := logging.DefaultConfig()
	if c.Logging != nil {
		if c.Logging.Level != "" {
			lc.Level = c.Logging.Level
		}
		if c.Logging.Format != "" {
			lc.Format = c.Logging.Format
		}
		if c.Logging.Output != "" {
			lc.Output = c.Logging.Output
		}
	}
	return lc
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
