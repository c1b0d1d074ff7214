package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreFirestore = "firestore"
	StoreMongo     = "mongo"
	StoreMemory    = "memory"
)

// Identity drivers accepted by AUTH_DRIVER.
const (
	AuthFirebase = "firebase"
	AuthLocal    = "local"
)

// Config holds all configuration values.
type Config struct {
	AppPort                string `mapstructure:"APP_PORT"`
	Env                    string `mapstructure:"ENV"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin      int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	MaxLoginAttemptsPerMin int    `mapstructure:"MAX_LOGIN_ATTEMPTS_PER_MIN"`

	CORSAllowedOrigins  []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	HealthCheckInterval time.Duration `mapstructure:"HEALTH_CHECK_INTERVAL"`

	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are believed. Empty means the socket address is the client.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Document store.
	StoreDriver  string `mapstructure:"STORE_DRIVER"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Firebase (Firestore + Authentication).
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseAPIKey          string `mapstructure:"FIREBASE_API_KEY"`

	// Staff identity. The local driver signs in a single configured account.
	AuthDriver         string `mapstructure:"AUTH_DRIVER"`
	LocalAdminEmail    string `mapstructure:"LOCAL_ADMIN_EMAIL"`
	LocalAdminPassword string `mapstructure:"LOCAL_ADMIN_PASSWORD"`

	// Staff sessions.
	SessionCookieName string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`

	// Redis configuration.
	RedisEnabled   bool   `mapstructure:"REDIS_ENABLED"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Cloudinary image storage. Empty credentials fall back to inline data URLs.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`

	// Booking records.
	BookingsResyncInterval  time.Duration `mapstructure:"BOOKINGS_RESYNC_INTERVAL"`
	BookingsStrictDateOrder bool          `mapstructure:"BOOKINGS_STRICT_DATE_ORDER"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("MAX_LOGIN_ATTEMPTS_PER_MIN", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080")
	v.SetDefault("HEALTH_CHECK_INTERVAL", "1m")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("STORE_DRIVER", StoreFirestore)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "hotel_admin")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("FIREBASE_API_KEY", "")
	v.SetDefault("AUTH_DRIVER", AuthFirebase)
	v.SetDefault("LOCAL_ADMIN_EMAIL", "admin@localhost")
	v.SetDefault("LOCAL_ADMIN_PASSWORD", "")
	v.SetDefault("SESSION_COOKIE_NAME", "hotel_admin_session")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 1)
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("CLOUDINARY_FOLDER", "hotel-admin")
	v.SetDefault("BOOKINGS_RESYNC_INTERVAL", "5m")
	v.SetDefault("BOOKINGS_STRICT_DATE_ORDER", false)
}

// Load reads configuration through the given viper instance.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// CloudinaryConfigured reports whether uploads should go to Cloudinary.
func (c Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}
