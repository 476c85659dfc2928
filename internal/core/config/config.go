package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type FrontendHTTP struct {
	Host      string
	Port      int
	StaticDir string
}

type App struct {
	Name     string
	Env      string // development / production / testing
	HTTP     HTTP
	Frontend FrontendHTTP
}

type Log struct {
	Level      string
	JSON       bool
	File       string // 非空则同时写文件并按大小切割
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

type Redis struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	BookTTLSec int    `mapstructure:"book_ttl_sec"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	MigrateRetries     int
	MigrateDelaySec    int
	LogLevel           string
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 兜底默认值
	v.SetDefault("log.maxsizemb", 100)
	v.SetDefault("log.maxbackups", 7)
	v.SetDefault("log.maxagedays", 30)
	v.SetDefault("db.migrateretries", 10)
	v.SetDefault("db.migratedelaysec", 5)
	v.SetDefault("jwt.accesstokenttlmin", 60*24*7)
	v.SetDefault("redis.book_ttl_sec", 60)

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}
