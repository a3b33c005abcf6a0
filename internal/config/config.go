package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields cram needs: where the model lives and
// where cards are stored.
type Config struct {
	Endpoint  string
	Model     string
	APIKeyEnv string
	DataDir   string
}

const (
	defaultConfigPath = "~/.config/cram/config.toml"
	defaultDataDir    = "~/.local/share/cram"
	defaultEndpoint   = "https://api.openai.com"
	defaultAPIKeyEnv  = "OPENAI_API_KEY"
)

// Load locates and parses the config file, falling back to defaults
// when it is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Endpoint:  defaultEndpoint,
		APIKeyEnv: defaultAPIKeyEnv,
		DataDir:   defaultDataDir,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(cfg.DataDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint  string `toml:"endpoint"`
		Model     string `toml:"model"`
		APIKeyEnv string `toml:"api_key_env"`
		DataDir   string `toml:"data_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	cfg.Model = strings.TrimSpace(raw.Model)
	if v := strings.TrimSpace(raw.APIKeyEnv); v != "" {
		cfg.APIKeyEnv = v
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = v
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	return cfg, nil
}

// APIKey resolves the key from the environment, consulting a .env file
// in the working directory first when one exists.
func (c Config) APIKey() string {
	_ = godotenv.Load()
	return strings.TrimSpace(os.Getenv(c.APIKeyEnv))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
