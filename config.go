package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v3"
)

// -------------------- 配置结构 --------------------

type InputCfg struct {
	Encoding string `yaml:"encoding"`
}

type OutputCfg struct {
	Format string `yaml:"format"`
}

type LogCfg struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Input    InputCfg  `yaml:"input"`
	Output   OutputCfg `yaml:"output"`
	Log      LogCfg    `yaml:"log"`
	Progress bool      `yaml:"progress"`
}

var (
	defaultConfigPath = "letterc.yaml"
	dotenvPath        = ".env"
)

func defaultConfig() Config {
	return Config{
		Input:  InputCfg{Encoding: "utf-8"},
		Output: OutputCfg{Format: formatText},
		Log:    LogCfg{Level: "info", Format: formatText},
	}
}

// loadConfig reads path over the defaults. A missing file is only an
// error when the caller asked for it explicitly.
func loadConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}
	return cfg, nil
}

// -------------------- 环境变量 --------------------

// envLookup prefers the process environment and falls back to the
// values read from the .env file.
type envLookup func(key string) (string, bool)

func newEnvLookup(path string) envLookup {
	dotenv, err := godotenv.Read(path)
	if err != nil {
		dotenv = map[string]string{}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup envLookup) error {
	if v, ok := lookup("LETTERC_ENCODING"); ok {
		c.Input.Encoding = v
	}
	if v, ok := lookup("LETTERC_FORMAT"); ok {
		c.Output.Format = v
	}
	if v, ok := lookup("LETTERC_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("LETTERC_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := lookup("LETTERC_PROGRESS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LETTERC_PROGRESS: %w", err)
		}
		c.Progress = b
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", formatText, formatJSON, c.Output.Format)
	}
	switch c.Log.Format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", formatText, formatJSON, c.Log.Format)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := decodeReader(nil, c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	return nil
}
