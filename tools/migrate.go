package main

import (
	"fmt"
	"os"

	"profast/config"
	"profast/database"
)

// Standalone migration runner: go run tools/migrate.go
func main() {
	cfg := config.Load()

	if _, err := database.InitDB(cfg); err != nil {
		fmt.Println("❌ Migration failed:", err)
		os.Exit(1)
	}

	fmt.Println("✅ Migration completed successfully!")
}
