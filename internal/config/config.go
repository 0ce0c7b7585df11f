package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	// Stream provider (Cloudflare Stream shaped API)
	StreamAPIBase       string
	StreamAccountID     string
	StreamAPIToken      string
	StreamDeliveryHost  string
	StreamWebhookSecret string
	StreamSigningKeyID  string
	StreamSigningKeyPEM string

	// Identity provider public key (PEM); empty disables auth checks
	AuthJWTPublicKey string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	ImagesBucket   string

	RedisAddr     string
	RedisPassword string
}

const defaultStreamAPIBase = "https://api.cloudflare.com/client/v4"

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("STREAM_API_BASE", defaultStreamAPIBase)

	required := []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"STREAM_ACCOUNT_ID",
		"STREAM_API_TOKEN",
		"STREAM_DELIVERY_HOST",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"IMAGES_BUCKET",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		StreamAPIBase:       viper.GetString("STREAM_API_BASE"),
		StreamAccountID:     viper.GetString("STREAM_ACCOUNT_ID"),
		StreamAPIToken:      viper.GetString("STREAM_API_TOKEN"),
		StreamDeliveryHost:  viper.GetString("STREAM_DELIVERY_HOST"),
		StreamWebhookSecret: viper.GetString("STREAM_WEBHOOK_SECRET"),
		StreamSigningKeyID:  viper.GetString("STREAM_SIGNING_KEY_ID"),
		StreamSigningKeyPEM: viper.GetString("STREAM_SIGNING_KEY_PEM"),

		AuthJWTPublicKey: viper.GetString("AUTH_JWT_PUBLIC_KEY"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		ImagesBucket:   viper.GetString("IMAGES_BUCKET"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
	}, nil
}
