package main

import (
	"context"

	"github.com/homemade/coursecat/cmd/catalog-export/commands"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")
	commands.ExecuteContext(context.Background())
}
