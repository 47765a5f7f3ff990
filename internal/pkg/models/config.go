package models

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	APIKeys  APIKeyConfig   `mapstructure:"api_keys"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress      string   `mapstructure:"nsqd_address"`
	LookupdAddresses []string `mapstructure:"lookupd_addresses"`
	Channel          string   `mapstructure:"channel"`
}

// DispatchConfig contains dispatch engine tunables.
//
// Trigger selects how pending helpers are advanced: "queue" uses NSQ
// deferred messages keyed to a helper, "poll" scans for due helpers on a
// fixed tick. Both are safe to run against the same storage.
type DispatchConfig struct {
	Trigger           string  `mapstructure:"trigger"`
	OfferTimeoutSec   int     `mapstructure:"offer_timeout_sec"`
	ResearchDelaySec  int     `mapstructure:"research_delay_sec"`
	MaxResearchRounds int     `mapstructure:"max_research_rounds"`
	MaxCandidates     int     `mapstructure:"max_candidates"`
	SearchRadiusKm    float64 `mapstructure:"search_radius_km"`
	CellPrecision     uint    `mapstructure:"cell_precision"`
	PollIntervalSec   int     `mapstructure:"poll_interval_sec"`
	PollBatchSize     int     `mapstructure:"poll_batch_size"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// APIKeyConfig contains API keys for service-to-service calls
type APIKeyConfig struct {
	JobService      string `mapstructure:"job_service"`
	RealtimeService string `mapstructure:"realtime_service"`
}
