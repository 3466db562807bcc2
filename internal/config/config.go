// Package config loads folio settings from defaults, a YAML file, a .env
// file and the process environment, in increasing order of precedence.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvConfig         = "FOLIO_CONFIG"
	EnvAPIURL         = "FOLIO_API_URL"
	EnvAPITimeout     = "FOLIO_API_TIMEOUT"
	EnvRetryAttempts  = "FOLIO_RETRY_ATTEMPTS"
	EnvRetryDelay     = "FOLIO_RETRY_DELAY"
	EnvGoogleClientID = "FOLIO_GOOGLE_CLIENT_ID"
	EnvAppTitle       = "FOLIO_APP_TITLE"
	EnvLogFile        = "FOLIO_LOG_FILE"
	EnvLogLevel       = "FOLIO_LOG_LEVEL"
	EnvListenAddr     = "FOLIO_LISTEN_ADDR"
	EnvPrefsFile      = "FOLIO_PREFS_FILE"
)

const (
	defaultAPIURL     = "http://localhost:8000"
	defaultTimeout    = 10 * time.Second
	defaultRetries    = 3
	defaultRetryDelay = time.Second
	defaultAppTitle   = "Portfolio"
	defaultLogLevel   = "info"
	defaultListenAddr = ":8080"
	dirName           = ".folio"
)

// Config represents the application configuration.
type Config struct {
	APIURL         string   `yaml:"api_url"`
	APITimeout     Duration `yaml:"api_timeout"`
	RetryAttempts  int      `yaml:"retry_attempts"`
	RetryDelay     Duration `yaml:"retry_delay"`
	GoogleClientID string   `yaml:"google_client_id,omitempty"`
	AppTitle       string   `yaml:"app_title"`
	LogFile        string   `yaml:"log_file"`
	LogLevel       string   `yaml:"log_level"`
	ListenAddr     string   `yaml:"listen_addr"`
	PrefsFile      string   `yaml:"prefs_file"`
}

// Duration accepts Go duration strings ("10s") or integer milliseconds.
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := parseDuration(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.Atoi(s); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Errorf("invalid duration %q (use e.g. 10s or milliseconds)", s)
	}
	return d, nil
}

// Dir returns ~/.folio.
func Dir() (dir string, err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return dir, err
	}
	dir = filepath.Join(home, dirName)
	return dir, err
}

// Default returns the built-in configuration. File paths live under ~/.folio
// when the home directory is known and in the working directory otherwise.
func Default() Config {
	dir, err := Dir()
	if err != nil {
		dir = dirName
	}
	return Config{
		APIURL:        defaultAPIURL,
		APITimeout:    Duration{defaultTimeout},
		RetryAttempts: defaultRetries,
		RetryDelay:    Duration{defaultRetryDelay},
		AppTitle:      defaultAppTitle,
		LogFile:       filepath.Join(dir, "folio.log"),
		LogLevel:      defaultLogLevel,
		ListenAddr:    defaultListenAddr,
		PrefsFile:     filepath.Join(dir, "preferences.json"),
	}
}

// Load builds the configuration. configPath may be empty, in which case
// FOLIO_CONFIG and then ~/.folio/config.yaml are tried; only an explicitly
// named file has to exist.
func Load(configPath string) (cfg Config, err error) {
	return load(configPath, ".env", os.LookupEnv)
}

func load(configPath, dotenvPath string, lookup func(string) (string, bool)) (cfg Config, err error) {
	cfg = Default()

	path := configPath
	if path == "" {
		path, _ = lookup(EnvConfig)
	}
	explicit := path != ""
	if !explicit {
		var dir string
		dir, err = Dir()
		if err == nil {
			path = filepath.Join(dir, "config.yaml")
		}
		err = nil
	}

	if path != "" {
		err = cfg.readFile(path, explicit)
		if err != nil {
			return cfg, err
		}
	}

	dotenv := map[string]string{}
	if dotenvPath != "" {
		dotenv, err = godotenv.Read(dotenvPath)
		if err != nil {
			if !os.IsNotExist(errors.Cause(err)) {
				err = errors.Wrapf(err, "failed to read env file: %s", dotenvPath)
				return cfg, err
			}
			dotenv = map[string]string{}
			err = nil
		}
	}

	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	err = cfg.applyEnv(env)
	if err != nil {
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) readFile(path string, required bool) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		if os.IsNotExist(err) {
			err = errors.Errorf("config file not found: %s", path)
			return err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return err
	}

	err = yaml.Unmarshal(data, c)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return err
	}
	return err
}

func (c *Config) applyEnv(env func(string) (string, bool)) (err error) {
	str := map[string]*string{
		EnvAPIURL:         &c.APIURL,
		EnvGoogleClientID: &c.GoogleClientID,
		EnvAppTitle:       &c.AppTitle,
		EnvLogFile:        &c.LogFile,
		EnvLogLevel:       &c.LogLevel,
		EnvListenAddr:     &c.ListenAddr,
		EnvPrefsFile:      &c.PrefsFile,
	}
	for key, dst := range str {
		if v, ok := env(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	durations := map[string]*Duration{
		EnvAPITimeout: &c.APITimeout,
		EnvRetryDelay: &c.RetryDelay,
	}
	for key, dst := range durations {
		if v, ok := env(key); ok {
			var d time.Duration
			d, err = parseDuration(v)
			if err != nil {
				err = errors.Wrapf(err, "invalid %s", key)
				return err
			}
			dst.Duration = d
		}
	}

	if v, ok := env(EnvRetryAttempts); ok {
		var n int
		n, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			err = errors.Wrapf(err, "invalid %s", EnvRetryAttempts)
			return err
		}
		c.RetryAttempts = n
	}
	return err
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() (err error) {
	u, perr := url.Parse(c.APIURL)
	if perr != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err = errors.Errorf("api_url must be an absolute http(s) URL, got %q", c.APIURL)
		return err
	}

	if c.APITimeout.Duration <= 0 {
		err = errors.New("api_timeout must be positive")
		return err
	}

	if c.RetryAttempts < 0 {
		err = errors.New("retry_attempts must not be negative")
		return err
	}

	if c.RetryDelay.Duration < 0 {
		err = errors.New("retry_delay must not be negative")
		return err
	}

	// Fill blanks left by an explicit empty value in the file.
	if c.AppTitle == "" {
		c.AppTitle = defaultAppTitle
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")

	return err
}
