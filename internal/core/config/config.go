package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultPath = "./configs/config.local.yaml"

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP

	CORSOrigins       []string `mapstructure:"corsOrigins"`
	RateLimitRPS      float64  `mapstructure:"rateLimitRps"`
	RateLimitBurst    int      `mapstructure:"rateLimitBurst"`
	LoginRPS          float64  `mapstructure:"loginRps"`
	LoginBurst        int      `mapstructure:"loginBurst"`
	MaxConcurrency    int64    `mapstructure:"maxConcurrency"`
	RequestTimeoutSec int      `mapstructure:"requestTimeoutSec"`
	MaxBodyBytes      int64    `mapstructure:"maxBodyBytes"`
}

type Rotate struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int `mapstructure:"maxSizeMb"`
	MaxBackups int `mapstructure:"maxBackups"`
	MaxAgeDays int `mapstructure:"maxAgeDays"`
	Compress   bool
}

type Log struct {
	Level  string
	JSON   bool
	Rotate Rotate
}

type JWT struct {
	Secret    string
	Algorithm string
	TTLSec    int `mapstructure:"ttlSec"`
}

func (j JWT) TTL() time.Duration { return time.Duration(j.TTLSec) * time.Second }

type Redis struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	UserTTLSec int    `mapstructure:"userTTLSec"`
}

func (r Redis) Enabled() bool { return r.Addr != "" }

type DB struct {
	Driver             string
	DSN                string
	Host               string
	Port               int
	Database           string
	Username           string
	Password           string
	Charset            string
	SSLMode            string `mapstructure:"sslMode"`
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "vacation-api")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readTimeoutSec", 10)
	v.SetDefault("app.http.writeTimeoutSec", 15)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.corsOrigins", []string{})
	v.SetDefault("app.rateLimitRps", 100)
	v.SetDefault("app.rateLimitBurst", 200)
	v.SetDefault("app.loginRps", 1)
	v.SetDefault("app.loginBurst", 5)
	v.SetDefault("app.maxConcurrency", 256)
	v.SetDefault("app.requestTimeoutSec", 10)
	v.SetDefault("app.maxBodyBytes", 1<<20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.rotate.enable", false)
	v.SetDefault("log.rotate.filename", "logs/app.log")
	v.SetDefault("log.rotate.maxSizeMb", 100)
	v.SetDefault("log.rotate.maxBackups", 7)
	v.SetDefault("log.rotate.maxAgeDays", 30)
	v.SetDefault("log.rotate.compress", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.ttlSec", 3600)

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 0)
	v.SetDefault("db.database", "vacation")
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.charset", "utf8mb4")
	v.SetDefault("db.sslMode", "disable")
	v.SetDefault("db.maxOpenConns", 20)
	v.SetDefault("db.maxIdleConns", 10)
	v.SetDefault("db.connMaxLifetimeMin", 30)
	v.SetDefault("db.autoMigrate", true)
	v.SetDefault("db.logLevel", "warn")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.userTTLSec", 300)
}

// Load 读取 yaml 后叠加 APP_ 前缀的环境变量，如 APP_JWT_SECRET
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = DefaultPath
		}
	}
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func MustLoad(path string) *Config {
	c, err := Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return c
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.JWT.Secret) == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.JWT.TTLSec <= 0 {
		errs = append(errs, errors.New("jwt.ttlSec must be positive"))
	}
	if c.App.HTTP.Port <= 0 {
		errs = append(errs, errors.New("app.http.port must be positive"))
	}
	return errors.Join(errs...)
}
