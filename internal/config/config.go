package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration required by the API process.
// All values must come from env (or an env-file loaded at startup).
// No business logic should depend on raw environment variables.
type Config struct {
	App     AppConfig
	Audio   AudioConfig
	Export  ExportConfig
	Session SessionConfig
}

type AppConfig struct {
	Env  string
	Port int

	// Timezone is the single IANA zone every call record is stamped in.
	Timezone string
}

type AudioConfig struct {
	// Dir is where uploaded clip bytes live.
	Dir string

	// Sort selects the clip display order: insertion or numeric.
	Sort string
}

type ExportConfig struct {
	// CSVColumns selects the CSV/XLSX column layout: full or minimal
	// (the legacy Time,Business,Notes shape).
	CSVColumns string
}

type SessionConfig struct {
	// TTL evicts sessions idle longer than this.
	TTL time.Duration
}

func Load() (Config, error) {
	c := Config{}
	var parseErrs []error

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	{
		n, err := mustInt("APP_PORT")
		n, parseErrs = appendParseErr(parseErrs, n, err)
		c.App.Port = n
	}
	c.App.Timezone = strings.TrimSpace(os.Getenv("TIMEZONE"))

	c.Audio.Dir = strings.TrimSpace(os.Getenv("AUDIO_DIR"))
	if c.Audio.Dir == "" {
		c.Audio.Dir = "uploads"
	}
	c.Audio.Sort = strings.TrimSpace(os.Getenv("AUDIO_SORT"))
	if c.Audio.Sort == "" {
		c.Audio.Sort = "insertion"
	}

	c.Export.CSVColumns = strings.TrimSpace(os.Getenv("EXPORT_CSV_COLUMNS"))
	if c.Export.CSVColumns == "" {
		c.Export.CSVColumns = "full"
	}

	c.Session.TTL = optionalDuration("SESSION_TTL")

	if err := joinErrors(parseErrs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.App.Env == "" {
		errs = append(errs, errors.New("APP_ENV is required"))
	} else if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}

	if c.App.Timezone == "" {
		errs = append(errs, errors.New("TIMEZONE is required"))
	} else if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE must be a valid IANA name: %v", err))
	}

	switch c.Audio.Sort {
	case "insertion", "numeric":
	default:
		errs = append(errs, fmt.Errorf("AUDIO_SORT must be insertion or numeric, got %q", c.Audio.Sort))
	}

	switch c.Export.CSVColumns {
	case "full", "minimal":
	default:
		errs = append(errs, fmt.Errorf("EXPORT_CSV_COLUMNS must be full or minimal, got %q", c.Export.CSVColumns))
	}

	if c.Session.TTL <= 0 {
		c.Session.TTL = 12 * time.Hour
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// Location loads the configured timezone. Validate has already checked the
// name, so failures here mean the zone database changed underneath us.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

func mustInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func optionalDuration(key string) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func appendParseErr(errs []error, n int, err error) (int, []error) {
	if err != nil {
		errs = append(errs, err)
	}
	return n, errs
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
