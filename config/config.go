package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment when present. Real
// deployments set variables directly; missing .env is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if _, ok := os.LookupEnv("APP_ENV"); !ok {
			log.Println("no .env file found, using process environment")
		}
	}
}
