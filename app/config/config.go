package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB
}

var AppConfig *Config

// InitDB connects to PostgreSQL. Connection settings come from the
// environment (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME); when
// DB_HOST is unset a local development database is used and logged, so
// there is no ambiguity about which configuration won.
func InitDB() {
	var psqlInfo string

	if host := os.Getenv("DB_HOST"); host != "" {
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=60",
			host, port, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		log.Printf("Using database configuration from environment (%s:%s)", host, port)
	} else {
		psqlInfo = "host=localhost port=5432 user=postgres dbname=mealbridge sslmode=disable"
		log.Println("DB_HOST not set, using local PostgreSQL database")
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{DB: db}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// Port returns the HTTP listen address.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}
