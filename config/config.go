package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env if present; in deployed environments the variables come
// from the process environment instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}
