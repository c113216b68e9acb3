package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Required values are enforced by must();
// everything optional degrades to a sensible default.
type Config struct {
	Env           string // deployment environment ("dev", "prod"); controls cookie flags
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	SessionSecret string // secret used to sign session cookie values

	IntakeEvents   bool // publish a broker event per created job card
	IntakeConsumer bool // run the intake-event logging consumer in this process
}

// Load reads configuration values from environment variables and
// returns a Config. Missing required variables cause the program to
// exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		SessionSecret:  must("SESSION_SECRET"),
		IntakeEvents:   envBool("INTAKE_EVENTS_ENABLED", false),
		IntakeConsumer: envBool("INTAKE_CONSUMER_ENABLED", false),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
