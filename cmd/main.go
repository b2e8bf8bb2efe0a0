package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/mviana/showbill/internal/server"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
