package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "zones_db",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultSync = Sync{
	PollInterval: 500 * time.Millisecond,
	Precision:    6,
	WriteTimeout: 3 * time.Second,
	IdleTTL:      10 * time.Minute,
}

var defaultMap = Map{
	MinZoom: 4,
	MaxZoom: 15,
	Margin:  0.1,
}

var defaultQuote = Quote{
	NightStart: 18 * time.Hour,
	NightEnd:   6 * time.Hour,
}

var defaultLog = Log{
	Level:  "info",
	Format: "json",
}

var defaultDebug = Debug{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultSync returns the default edit-session settings.
func DefaultSync() Sync { return defaultSync }

// DefaultMap returns the default viewport settings.
func DefaultMap() Map { return defaultMap }

// DefaultQuote returns the default night window.
func DefaultQuote() Quote { return defaultQuote }

// DefaultLog returns the default logging settings.
func DefaultLog() Log { return defaultLog }

// DefaultDebug returns the default profiling listener settings.
func DefaultDebug() Debug { return defaultDebug }
