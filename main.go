package main

import (
	"github.com/joho/godotenv"

	"github.com/Stewinjo/AnyLetters/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
