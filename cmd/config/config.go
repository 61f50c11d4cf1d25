package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	_envPrefix  = "crm_server"
	_configName = "server"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// RegisterFlags adds the command line flags understood by LoadConfig.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config-dir", "", "directory searched first for server.yaml")
	if err := viper.BindPFlag("config_dir", flags.Lookup("config-dir")); err != nil {
		panic(err)
	}
}

// LoadConfig reads the process configuration once and panics when no
// configuration file can be read.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		paths := []string{"config", "/config"}
		if dir := viper.GetString("config_dir"); dir != "" {
			paths = append([]string{dir}, paths...)
		}

		config, err := Load(viper.New(), paths...)
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

// Load reads server.yaml from the first of paths that has one. Environment
// variables prefixed with CRM_SERVER_ override file values.
func Load(v *viper.Viper, paths ...string) (AppConfig, error) {
	v.SetEnvPrefix(_envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName(_configName)
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.timezone", "Asia/Seoul")
	v.SetDefault("general.environment", "production")
	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("kafka.group", "crm-server")
	v.SetDefault("reconcile.schedule", "0 0 * * *")
	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.max_cost", 1<<16)
	v.SetDefault("cache.num_counters", 1e6)

	if err := v.ReadInConfig(); err != nil {
		return AppConfig{}, err
	}

	config := AppConfig{
		General: GeneralConfig{
			LogLevel:    v.GetString("general.log_level"),
			Timezone:    v.GetString("general.timezone"),
			Environment: v.GetString("general.environment"),
		},
		HTTP: HTTPConfig{
			Addr:           v.GetString("http.addr"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		Postgresql: PostgresqlConfig{
			URL: v.GetString("database.url"),
			DSN: v.GetString("database.dsn"),
		},
		Kafka: KafkaConfig{
			Brokers:        v.GetStringSlice("kafka.brokers"),
			Group:          v.GetString("kafka.group"),
			SchemaRegistry: v.GetString("kafka.schema_registry"),
		},
		Reconcile: ReconcileConfig{
			Schedule: v.GetString("reconcile.schedule"),
		},
		Cache: CacheConfig{
			Backend:       v.GetString("cache.backend"),
			MaxCost:       v.GetInt64("cache.max_cost"),
			NumCounters:   v.GetInt64("cache.num_counters"),
			RedisAddr:     v.GetString("cache.redis_addr"),
			RedisPassword: v.GetString("cache.redis_password"),
			RedisDB:       v.GetInt("cache.redis_db"),
		},
	}

	if config.Cache.Backend != CacheBackendMemory && config.Cache.Backend != CacheBackendRedis {
		return AppConfig{}, fmt.Errorf("unknown cache backend %q", config.Cache.Backend)
	}

	return config, nil
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Postgresql PostgresqlConfig
	Kafka      KafkaConfig
	Reconcile  ReconcileConfig
	Cache      CacheConfig
}

// IsLocal reports whether the process runs without external services.
func (c AppConfig) IsLocal() bool {
	return c.General.Environment == "local"
}

type GeneralConfig struct {
	LogLevel    string
	Timezone    string
	Environment string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type ReconcileConfig struct {
	Schedule string
}

type CacheConfig struct {
	Backend       string
	MaxCost       int64
	NumCounters   int64
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}
