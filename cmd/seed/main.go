package main

import (
	"log"
	"os"

	"ai-medtutor-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	SeedFlashcards(db)
	SeedCaseStudies(db)
	SeedContentLibrary(db)
	SeedTutorPrompts(db)

	log.Println("Seeding complete")
}
