package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env with PRIZEQ_* defaults; absence is fine.
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
