package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type StorageDriver string

const (
	DriverPostgres StorageDriver = "postgres"
	DriverSQLite   StorageDriver = "sqlite"
	DriverDynamoDB StorageDriver = "dynamodb"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is required")

// Config is read once at startup from the environment (.env is loaded by the caller).
type Config struct {
	Port        int
	DatabaseURL string
	Driver      StorageDriver
	AutoMigrate bool

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	LeadsTable         string
	CalculationsTable  string

	CORSAllowedOrigins []string
	AdminJWTSecret     string

	SendGridAPIKey string
	LeadNotifyFrom string
	LeadNotifyTo   string
}

func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AutoMigrate:        getenvBool("AUTO_MIGRATE", true),
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		LeadsTable:         getenvDefault("LEADS_TABLE", "leads"),
		CalculationsTable:  getenvDefault("CALCULATIONS_TABLE", "calculations"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AdminJWTSecret:     os.Getenv("ADMIN_JWT_SECRET"),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		LeadNotifyFrom:     os.Getenv("LEAD_NOTIFY_FROM"),
		LeadNotifyTo:       os.Getenv("LEAD_NOTIFY_TO"),
	}

	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	driver, err := resolveDriver(os.Getenv("STORAGE_DRIVER"), cfg.DatabaseURL)
	if err != nil {
		return Config{}, err
	}
	cfg.Driver = driver

	if cfg.Driver != DriverDynamoDB && cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	return cfg, nil
}

// resolveDriver honors STORAGE_DRIVER and otherwise infers it from the DATABASE_URL scheme.
func resolveDriver(explicit, databaseURL string) (StorageDriver, error) {
	switch d := StorageDriver(strings.ToLower(strings.TrimSpace(explicit))); d {
	case DriverPostgres, DriverSQLite, DriverDynamoDB:
		return d, nil
	case "":
	default:
		return "", fmt.Errorf("unsupported STORAGE_DRIVER %q", explicit)
	}

	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(databaseURL, "dynamodb://"):
		return DriverDynamoDB, nil
	case databaseURL == "":
		return DriverPostgres, nil
	default:
		return DriverSQLite, nil
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
