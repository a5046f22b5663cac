package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	dotEnv    string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithDotEnv reads APP_ variables from a dotenv file. Variables already set
// in the process environment win over the file; a missing file is ignored.
func WithDotEnv(path string) Option {
	return func(o *loadOptions) {
		o.dotEnv = path
	}
}

// Load builds the configuration for profile. Later layers override earlier ones:
//
//	defaults -> {dir}/base.yaml -> {dir}/{profile}.yaml -> dotenv file -> APP_* env
//
// Env names are matched against the keys already known, so that
// APP_SERVER_READ_TIMEOUT lands on a field containing underscores rather
// than being split at every one of them:
//
//	APP_SERVER_READ_TIMEOUT                    -> server.read_timeout
//	APP_STORE_BACKEND                          -> store.backend
//	APP_AUTH_JWT_SECRET                        -> auth.jwt_secret
//	APP_DATABASE_CIRCUIT_BREAKER_MAX_FAILURES  -> database.circuit_breaker.max_failures
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := setDefaults(k); err != nil {
		return nil, err
	}
	for _, name := range []string{"base", profile} {
		if err := loadYAML(k, filepath.Join(o.configDir, name+".yaml")); err != nil {
			return nil, err
		}
	}

	environ, err := environment(o.dotEnv)
	if err != nil {
		return nil, err
	}
	if err := loadEnv(k, environ); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

func setDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("default %s: %w", key, err)
		}
	}
	return nil
}

func loadYAML(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// environment returns the process environment, preceded by the entries of
// the dotenv file when one is configured. The env provider applies entries
// in order, so process values land last and win.
func environment(path string) ([]string, error) {
	base := os.Environ()
	if path == "" {
		return base, nil
	}
	fromFile, err := godotenv.Read(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return base, nil
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	out := make([]string, 0, len(fromFile)+len(base))
	for name, value := range fromFile {
		out = append(out, name+"="+value)
	}
	return append(out, base...), nil
}

func loadEnv(k *koanf.Koanf, environ []string) error {
	known := envKeys(k.Keys())
	provider := env.Provider(".", env.Opt{
		Prefix:      envPrefix,
		EnvironFunc: func() []string { return environ },
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain file name", profile)
	}
	return nil
}

// envKeys maps "server_read_timeout" to "server.read_timeout" for every known key.
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}
