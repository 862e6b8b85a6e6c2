package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Server struct {
	Port           int
	AllowedOrigin  string
	RequestTimeout time.Duration
}

type DB struct {
	DbHOST        string
	DbPORT        string
	DbUSER        string
	DbPASSWORD    string
	DbNAME        string
	DbSSLMODE     string
	MigrationsDir string
}

type MinIO struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	BucketName    string
	UseSSL        bool
	Region        string
	PublicBaseURL string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Auth struct {
	JWTSecretKey string
	Issuer       string
}

type AI struct {
	TextEndpoint  string
	TextAPIKey    string
	TextModel     string
	ImageEndpoint string
	ImageAPIKey   string
	Timeout       time.Duration
}

type Limits struct {
	FreeUsageLimit  int
	RateLimit       int
	RateLimitWindow time.Duration
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	Server Server
	DB     DB
	MinIO  MinIO
	Redis  Redis
	Auth   Auth
	AI     AI
	Limits Limits
	Log    Log
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

func LoadServer() Server {
	return Server{
		Port:           getEnvAsInt("SERVER_PORT", 8080),
		AllowedOrigin:  getEnv("CORS_ALLOWED_ORIGIN", "*"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 60*time.Second),
	}
}

func LoadDB() DB {
	return DB{
		DbHOST:        getEnv("DB_HOST", "localhost"),
		DbPORT:        getEnv("DB_PORT", "5432"),
		DbUSER:        getEnv("DB_USER", "postgres"),
		DbPASSWORD:    getEnv("DB_PASSWORD", "password"),
		DbNAME:        getEnv("DB_NAME", "quickai"),
		DbSSLMODE:     getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "migrations"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:      getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:     getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:     getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName:    getEnv("MINIO_BUCKET_NAME", "creations"),
		UseSSL:        getEnvBool("MINIO_USE_SSL", false),
		Region:        getEnv("MINIO_REGION", "us-east-1"),
		PublicBaseURL: getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadRedis() Redis {
	return Redis{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func LoadAI() AI {
	return AI{
		TextEndpoint:  getEnv("AI_TEXT_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"),
		TextAPIKey:    getEnv("AI_TEXT_API_KEY", ""),
		TextModel:     getEnv("AI_TEXT_MODEL", "gemini-2.0-flash"),
		ImageEndpoint: getEnv("AI_IMAGE_ENDPOINT", "https://clipdrop-api.co/text-to-image/v1"),
		ImageAPIKey:   getEnv("AI_IMAGE_API_KEY", ""),
		Timeout:       getEnvDuration("AI_TIMEOUT", 45*time.Second),
	}
}

func LoadLimits() Limits {
	return Limits{
		FreeUsageLimit:  getEnvAsInt("FREE_USAGE_LIMIT", 10),
		RateLimit:       getEnvAsInt("AI_RATE_LIMIT", 20),
		RateLimitWindow: getEnvDuration("AI_RATE_LIMIT_WINDOW", time.Minute),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Server: LoadServer(),
		DB:     LoadDB(),
		MinIO:  LoadMinIO(),
		Redis:  LoadRedis(),
		Auth: Auth{
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
			Issuer:       getEnv("JWT_ISSUER", ""),
		},
		AI:     LoadAI(),
		Limits: LoadLimits(),
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}
