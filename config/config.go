package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/andrewcbuensalida/mudita-task-organizer-assignment/metrics"
)

// EnvPrefix marks nested environment overrides, e.g.
// PLANNER_METRICS__PROMETHEUS_ENABLED=true.
const EnvPrefix = "PLANNER_"

// flatEnv maps the plain environment variables of the service onto config keys.
var flatEnv = map[string]string{
	"OPENAI_API_KEY":  "openai.api_key",
	"HOST":            "server.host",
	"PORT":            "server.port",
	"DEBUG":           "server.debug",
	"ALLOWED_ORIGINS": "server.allowed_origins",
}

type Config struct {
	Server  ServerConfig   `json:"server"`
	OpenAI  OpenAIConfig   `json:"openai"`
	Metrics metrics.Config `json:"metrics"`
	Sentry  SentryConfig   `json:"sentry"`
}

// Load reads the configuration file at path, when present, and applies
// environment overrides on top of it. An empty path or a missing file
// yields a configuration built from defaults and the environment only.
//
// Precedence, lowest first: the file, the flat variables (PORT, DEBUG, ...),
// then nested PLANNER_ variables. PLANNER_SERVER__PORT therefore wins over
// PORT when both are set.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.ProviderWithValue("", ".", flatEnvKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", nestedEnvKey), nil); err != nil {
		return nil, fmt.Errorf("load %s env: %w", EnvPrefix, err)
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	cfg.OpenAI.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Server.Validate(); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if err := cfg.OpenAI.Validate(); err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// flatEnvKey maps one of the plain service variables onto its config key.
// Other and empty variables map to the empty key and are skipped.
func flatEnvKey(name, value string) (string, any) {
	key, ok := flatEnv[name]
	if !ok || value == "" {
		return "", nil
	}
	return key, normalize(key, value)
}

// nestedEnvKey maps PLANNER_SECTION__KEY onto section.key.
func nestedEnvKey(name, value string) (string, any) {
	if value == "" || !strings.HasPrefix(name, EnvPrefix) {
		return "", nil
	}
	name = strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key := strings.ReplaceAll(name, "__", ".")
	return key, normalize(key, value)
}

// normalize reads the debug flag the lenient way: only "true", in any case,
// enables it and every other value disables it.
func normalize(key, value string) any {
	if key == "server.debug" {
		return strings.EqualFold(value, "true")
	}
	return value
}
