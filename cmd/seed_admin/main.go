package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"mealbridge/app/config"
	"mealbridge/app/database"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: seed_admin -email admin@example.com -password secret [-name Name]")
	}

	_ = godotenv.Load()

	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := database.NewPGStore(config.GetDB())

	uid, user, err := database.SignUpAdmin(store, *email, *password, *name)
	if err != nil {
		log.Fatalf("Error creating admin: %v", err)
	}

	fmt.Printf("Admin created successfully: %s (%s) uid=%s\n", user.Name, user.Email, uid)
}
