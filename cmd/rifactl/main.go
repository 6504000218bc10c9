package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/rifaapp/rifa-api/cmd/rifactl/commands"
)

func main() {
	commands.Execute()
}
