package main

import (
	_ "github.com/joho/godotenv/autoload"

	"bridges/internal/cli"
)

func main() {
	cli.Execute()
}
