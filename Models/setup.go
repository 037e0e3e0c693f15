package Models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database connection and runs the schema migrations.
// When DB_HOST is set a Postgres DSN is built from the environment,
// otherwise a local SQLite file is used.
func Connect() {
	connection, err := openConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	Migrate(DB)
}

func openConnection() (*gorm.DB, error) {
	if os.Getenv("DB_HOST") != "" {
		DbHost := os.Getenv("DB_HOST")
		DbUser := os.Getenv("DB_USER")
		DbPassword := os.Getenv("DB_PASSWORD")
		DbName := os.Getenv("DB_NAME")
		DbPort := os.Getenv("DB_PORT")

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}
	return gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
}

// Migrate creates the schema. Organisations first, locations carry the
// foreign key and must come after.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(&Organisation{}); err != nil {
		log.Println(err)
	}
	if err := db.AutoMigrate(&Location{}); err != nil {
		log.Println(err)
	}
}
