package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Document DocumentConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Outline  OutlineConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type DocumentConfig struct {
	// Source is a URL or a file path of the JSON document
	Source       string
	FetchTimeout time.Duration
	// Watch reloads the document when a file source changes
	Watch bool
}

// Cache modes
const (
	CacheModeNone   = "none"
	CacheModeMemory = "memory"
	CacheModeRedis  = "redis"
)

type CacheConfig struct {
	Mode string
	TTL  time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type OutlineConfig struct {
	// TableFile optionally replaces the built-in group table
	TableFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("document.source", "./data/sumaDeTeologia.json")
	v.SetDefault("document.fetch_timeout", 20)
	v.SetDefault("document.watch", false)
	v.SetDefault("cache.mode", CacheModeMemory)
	v.SetDefault("cache.ttl", 3600)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Document: DocumentConfig{
			Source:       v.GetString("document.source"),
			FetchTimeout: v.GetDuration("document.fetch_timeout") * time.Second,
			Watch:        v.GetBool("document.watch"),
		},
		Cache: CacheConfig{
			Mode: v.GetString("cache.mode"),
			TTL:  v.GetDuration("cache.ttl") * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Outline: OutlineConfig{
			TableFile: v.GetString("outline.table_file"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		v.Set("server.port", port)
		config.Server.Port = v.GetInt("server.port")
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if source := os.Getenv("DOCUMENT_SOURCE"); source != "" {
		config.Document.Source = source
	}
	if mode := os.Getenv("CACHE_MODE"); mode != "" {
		config.Cache.Mode = mode
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if tableFile := os.Getenv("OUTLINE_TABLE_FILE"); tableFile != "" {
		config.Outline.TableFile = tableFile
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings that would otherwise fail late at startup
func (c *Config) Validate() error {
	if c.Document.Source == "" {
		return fmt.Errorf("document.source is required")
	}
	switch c.Cache.Mode {
	case CacheModeNone, CacheModeMemory:
	case CacheModeRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("redis.address is required when cache.mode is %q", CacheModeRedis)
		}
	default:
		return fmt.Errorf("unsupported cache.mode %q", c.Cache.Mode)
	}
	return nil
}
