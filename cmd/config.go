package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"logistics/internal/jobs"
	"logistics/internal/pkg/errs"
)

const (
	DefaultHTTPPort  = "8080"
	DefaultFleetSize = 2
	MaxFleetSize     = 1000
)

type Config struct {
	HTTPPort            string
	FleetSize           int
	FleetReportSchedule string
	LogLevel            slog.Level
}

// LoadConfig reads the configuration through getenv, applying defaults to
// unset variables.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:            getenv("HTTP_PORT"),
		FleetSize:           DefaultFleetSize,
		FleetReportSchedule: getenv("FLEET_REPORT_SCHEDULE"),
		LogLevel:            slog.LevelInfo,
	}
	if config.HTTPPort == "" {
		config.HTTPPort = DefaultHTTPPort
	}
	if config.FleetReportSchedule == "" {
		config.FleetReportSchedule = jobs.DefaultFleetReportSchedule
	}

	var sizeErr, levelErr error
	if raw := strings.TrimSpace(getenv("FLEET_SIZE")); raw != "" {
		config.FleetSize, sizeErr = parseFleetSize(raw)
	}
	if raw := strings.TrimSpace(getenv("LOG_LEVEL")); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			levelErr = errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
		}
	}
	if err := errors.Join(sizeErr, levelErr); err != nil {
		return Config{}, err
	}

	return config, nil
}

func parseFleetSize(raw string) (int, error) {
	size, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("FLEET_SIZE", err)
	}
	if size < 1 || size > MaxFleetSize {
		return 0, errs.NewValueIsOutOfRangeError("FLEET_SIZE", size, 1, MaxFleetSize)
	}
	return size, nil
}

// Address is the listen address of the HTTP server.
func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}
