package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

var (
	ListenAddr string

	DBDriver string
	DBDSN    string

	// StorageDriver selects where uploaded files live: "disk" or "s3".
	StorageDriver string
	StorageRoot   string
	StorageURL    string

	AWSRegion string
	S3Bucket  string

	JWTSecret string
	TokenTTL  time.Duration

	ProbeTimeout time.Duration
)

func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("cmd/config/")
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("db.driver", "sqlite3")
	viper.SetDefault("db.dsn", "videoshare.db")
	viper.SetDefault("storage.driver", "disk")
	viper.SetDefault("storage.root", "./storage")
	viper.SetDefault("storage.url", "http://localhost:8080/storage")
	viper.SetDefault("auth.secret", "change-me")
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("probe.timeout", "30s")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No config file found, using defaults and environment: %v", err)
	}

	ListenAddr = viper.GetString("server.addr")
	DBDriver = viper.GetString("db.driver")
	DBDSN = viper.GetString("db.dsn")
	StorageDriver = viper.GetString("storage.driver")
	StorageRoot = viper.GetString("storage.root")
	StorageURL = viper.GetString("storage.url")
	AWSRegion = viper.GetString("aws.region")
	S3Bucket = viper.GetString("aws.s3_bucket")
	JWTSecret = viper.GetString("auth.secret")
	TokenTTL = viper.GetDuration("auth.token_ttl")
	ProbeTimeout = viper.GetDuration("probe.timeout")
}
