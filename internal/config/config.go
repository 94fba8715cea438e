// Package config loads entityd settings from a YAML file with ENTITYD_*
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const EnvPrefix = "ENTITYD"

type Config struct {
	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`

	// Requesters allowed through the authorization step.
	Requesters []string `yaml:"requesters"`
	// Entities seeded into the in-memory repository at startup.
	Entities []string `yaml:"entities"`
}

type Server struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

type Log struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Server: Server{Addr: ":8080", Mode: "release"},
		Log:    Log{Level: "info"},
		Requesters: []string{
			"AUTHORIZED-USER",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPrefix + "_SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvPrefix + "_SERVER_MODE"); ok {
		c.Server.Mode = v
	}
	if v, ok := lookup(EnvPrefix + "_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "_REQUESTERS"); ok {
		c.Requesters = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "_ENTITIES"); ok {
		c.Entities = splitList(v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate reports the settings that are missing or out of range.
func (c Config) Validate() error {
	var problems []string
	if c.Server.Addr == "" {
		problems = append(problems, "server.addr is empty")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("server.mode %q is not one of debug, release, test", c.Server.Mode))
	}
	if len(c.Requesters) == 0 {
		problems = append(problems, "requesters is empty")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}
