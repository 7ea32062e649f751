package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// Validate checks cross-field constraints cleanenv cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server.max_body_bytes: must be positive"))
	}
	if !slices.Contains(validLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level: %q not one of %v", c.Log.Level, validLevels))
	}
	if !slices.Contains(validFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format: %q not one of %v", c.Log.Format, validFormats))
	}

	d := c.Decoder
	if d.PlaceMinLen < 1 || d.ReviewMinLen < 0 {
		errs = append(errs, errors.New("decoder: min lengths must be positive"))
	}
	if d.MaxDepth < 0 || d.ScanDepth < 0 {
		errs = append(errs, errors.New("decoder: depths must not be negative"))
	}
	if d.IDWindowFrom > d.IDWindowTo {
		errs = append(errs, fmt.Errorf("decoder: id window %d..%d is empty", d.IDWindowFrom, d.IDWindowTo))
	}
	if _, err := d.Layout(); err != nil {
		errs = append(errs, fmt.Errorf("decoder: %w", err))
	}

	if c.Fetch.Timeout <= 0 {
		errs = append(errs, errors.New("fetch.timeout: must be positive"))
	}

	return errors.Join(errs...)
}
