package main

import (
	"Atlas/FiberConfig"
	"Atlas/Models"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	Models.Connect()
	FiberConfig.FiberConfig()
}
