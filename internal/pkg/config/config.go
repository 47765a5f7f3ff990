package config

import (
	"log"
	"strings"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional config file plus the
// environment. Environment variables win: DISPATCH_DATABASE_HOST
// overrides database.host.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	v.SetEnvPrefix("DISPATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config file not loaded, using env and defaults: %v", err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "dispatch-service")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "dispatch")
	v.SetDefault("database.database", "dispatch")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.idle_conns", 5)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.nsqd_address", "localhost:4150")
	v.SetDefault("nsq.channel", "dispatch-service")

	v.SetDefault("dispatch.trigger", "queue")
	v.SetDefault("dispatch.offer_timeout_sec", 5)
	v.SetDefault("dispatch.research_delay_sec", 10)
	v.SetDefault("dispatch.max_research_rounds", 0)
	v.SetDefault("dispatch.max_candidates", 20)
	v.SetDefault("dispatch.search_radius_km", 5.0)
	v.SetDefault("dispatch.cell_precision", 5)
	v.SetDefault("dispatch.poll_interval_sec", 5)
	v.SetDefault("dispatch.poll_batch_size", 100)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
