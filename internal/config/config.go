package config

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	RateLimit RateLimit
	Kafka     Kafka
	Sync      Sync
	Map       Map
	Quote     Quote
	Log       Log
	Debug     Debug
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// RateLimit stores per-key HTTP rate limit settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Kafka stores the optional edit-event consumer settings. Empty brokers disable it.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Enabled reports whether the consumer should start.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && k.Topic != "" && k.GroupID != ""
}

// Sync stores edit-session settings.
type Sync struct {
	PollInterval time.Duration
	Precision    int
	WriteTimeout time.Duration
	IdleTTL      time.Duration
}

// Map stores viewport fitting settings.
type Map struct {
	MinZoom int
	MaxZoom int
	Margin  float64
}

// Quote stores the night window as offsets from midnight.
type Quote struct {
	NightStart time.Duration
	NightEnd   time.Duration
}

// Debug stores the profiling listener settings. Non-loopback callers need basic auth.
type Debug struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Log stores logger settings.
type Log struct {
	Level  string
	Format string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		DB:        defaultDB,
		RateLimit: defaultRateLimit,
		Sync:      defaultSync,
		Map:       defaultMap,
		Quote:     defaultQuote,
		Log:       defaultLog,
		Debug:     defaultDebug,
	}

	e := &envReader{}
	cfg.Port = e.int("PORT", cfg.Port)

	cfg.DB.Host = e.str("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = e.str("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = e.str("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = e.str("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = e.str("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	cfg.RateLimit.Enabled = e.bool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = e.float("RATE_LIMIT_RATE", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = e.int("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = e.duration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = e.int("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)

	cfg.Kafka.Brokers = e.list("KAFKA_BROKERS")
	cfg.Kafka.Topic = e.str("KAFKA_TOPIC", "")
	cfg.Kafka.GroupID = e.str("KAFKA_GROUP", "")

	cfg.Sync.PollInterval = e.duration("SYNC_POLL_INTERVAL", cfg.Sync.PollInterval)
	cfg.Sync.Precision = e.int("SYNC_PRECISION", cfg.Sync.Precision)
	cfg.Sync.WriteTimeout = e.duration("SYNC_WRITE_TIMEOUT", cfg.Sync.WriteTimeout)
	cfg.Sync.IdleTTL = e.duration("SYNC_IDLE_TTL", cfg.Sync.IdleTTL)

	cfg.Map.MinZoom = e.int("MAP_MIN_ZOOM", cfg.Map.MinZoom)
	cfg.Map.MaxZoom = e.int("MAP_MAX_ZOOM", cfg.Map.MaxZoom)
	cfg.Map.Margin = e.float("MAP_MARGIN", cfg.Map.Margin)

	cfg.Quote.NightStart = e.clock("QUOTE_NIGHT_START", cfg.Quote.NightStart)
	cfg.Quote.NightEnd = e.clock("QUOTE_NIGHT_END", cfg.Quote.NightEnd)

	cfg.Log.Level = e.str("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = e.str("LOG_FORMAT", cfg.Log.Format)

	cfg.Debug.Enabled = e.bool("DEBUG_ENABLED", cfg.Debug.Enabled)
	cfg.Debug.Addr = e.str("DEBUG_ADDR", cfg.Debug.Addr)
	cfg.Debug.User = e.str("DEBUG_USER", cfg.Debug.User)
	cfg.Debug.Pass = e.str("DEBUG_PASS", cfg.Debug.Pass)

	if e.err != nil {
		return nil, e.err
	}

	fs := pflag.NewFlagSet("service-zones", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Sync.PollInterval <= 0 {
		return fmt.Errorf("invalid SYNC_POLL_INTERVAL: %s", c.Sync.PollInterval)
	}
	if c.Sync.Precision < 0 || c.Sync.Precision > 12 {
		return fmt.Errorf("invalid SYNC_PRECISION: %d", c.Sync.Precision)
	}
	if c.Map.MinZoom < 0 || c.Map.MaxZoom < c.Map.MinZoom {
		return fmt.Errorf("invalid zoom range: %d..%d", c.Map.MinZoom, c.Map.MaxZoom)
	}
	if c.Map.Margin < 0 {
		return fmt.Errorf("invalid MAP_MARGIN: %v", c.Map.Margin)
	}
	return nil
}

// envReader collects the first parse error so Load can report it once.
type envReader struct{ err error }

func (e *envReader) lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e *envReader) fail(key, raw string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
}

func (e *envReader) str(key, def string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return def
}

func (e *envReader) int(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return n
}

func (e *envReader) float(key string, def float64) float64 {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return f
}

func (e *envReader) bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return b
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return d
}

// clock parses "HH:MM" into an offset from midnight.
func (e *envReader) clock(key string, def time.Duration) time.Duration {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

func (e *envReader) list(key string) []string {
	v, ok := e.lookup(key)
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
