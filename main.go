package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"safelink-lite/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
