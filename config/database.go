package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func buildDSN() string {
	host := GetEnvDefault("DB_HOST", "localhost")
	user := GetEnvDefault("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD")
	name := GetEnvDefault("DB_NAME", "workzen_db")
	port := GetEnvDefault("DB_PORT", "5432")
	sslmode := GetEnvDefault("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslmode)
}

func ConnectDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}
