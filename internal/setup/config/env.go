package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads filename into the environment. A missing file is fine in
// production, where variables come from the process environment.
func LoadEnvFile(filename string) {
	if err := godotenv.Load(filename); err != nil {
		log.Println("no env file loaded:", err)
	}
}

// RequireEnv aborts startup when a mandatory variable is absent.
func RequireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}
