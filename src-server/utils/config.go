package utils

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sylcal/src-server/parser"
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	port string

	location        *time.Location
	defaultDuration time.Duration

	rateLimit rate.Limit
	rateBurst int

	logLevel slog.Level
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "5000"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				slog.Warn("TIMEZONE is not set, using default timezone", "timezone", parser.DefaultTimezone)
				loc, err = time.LoadLocation(parser.DefaultTimezone)
				if err != nil {
					slog.Warn("can't load default timezone, using UTC", "error", err)
					loc = time.UTC
				}
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", loc.String())
			return loc
		}(),
		defaultDuration: func() time.Duration {
			defaultDuration := os.Getenv("DEFAULT_DURATION")
			if defaultDuration == "" {
				return parser.DefaultDuration
			}
			duration, err := time.ParseDuration(defaultDuration)
			if err != nil || duration <= 0 {
				slog.Error("invalid DEFAULT_DURATION", "value", defaultDuration, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "DEFAULT_DURATION", duration)
			return duration
		}(),

		rateLimit: func() rate.Limit {
			rateLimit := os.Getenv("RATE_LIMIT")
			if rateLimit == "" {
				return rate.Limit(10)
			}
			if rateLimit == "inf" {
				return rate.Inf
			}
			perSecond, err := strconv.ParseFloat(rateLimit, 64)
			if err != nil || perSecond <= 0 {
				slog.Error("invalid RATE_LIMIT", "value", rateLimit, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "RATE_LIMIT", perSecond)
			return rate.Limit(perSecond)
		}(),
		rateBurst: func() int {
			rateBurst := os.Getenv("RATE_BURST")
			if rateBurst == "" {
				return 20
			}
			burst, err := strconv.Atoi(rateBurst)
			if err != nil || burst <= 0 {
				slog.Error("invalid RATE_BURST", "value", rateBurst, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "RATE_BURST", burst)
			return burst
		}(),

		logLevel: func() slog.Level {
			logLevel := os.Getenv("LOG_LEVEL")
			var level slog.Level
			if logLevel == "" {
				return slog.LevelDebug
			}
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				slog.Warn("invalid LOG_LEVEL, using debug", "value", logLevel, "error", err)
				return slog.LevelDebug
			}
			return level
		}(),
	}
}

// Get PORT env, default to 5000
func (c *Config) GetPort() string {
	return c.port
}

// Get TIMEZONE env, default to America/Chicago
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get DEFAULT_DURATION env, default to 1h30m
func (c *Config) GetDefaultDuration() time.Duration {
	return c.defaultDuration
}

// Get RATE_LIMIT env in requests per second, default to 10
func (c *Config) GetRateLimit() rate.Limit {
	return c.rateLimit
}

// Get RATE_BURST env, default to 20
func (c *Config) GetRateBurst() int {
	return c.rateBurst
}

// Get LOG_LEVEL env, default to debug
func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}
