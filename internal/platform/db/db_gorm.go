// Package db opens the relational store used by the credential service.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB opens the account database and bounds its connection pool.
//
// MySQL connection parameters come from DB_USER, DB_PASSWORD, DB_HOST,
// DB_PORT and DB_NAME. When DB_HOST is unset the service falls back to
// a local SQLite file for development. Error translation is enabled so
// unique-key violations surface as gorm.ErrDuplicatedKey regardless of
// dialect.
func OpenDB() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	host := os.Getenv("DB_HOST")
	if host == "" {
		db, err := gorm.Open(sqlite.Open("./movieapp.db"), cfg)
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
		log.Println("DB_HOST not set, using local SQLite database")
		boundPool(db)
		return db
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), cfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	boundPool(db)
	return db
}

// boundPool caps the connection pool so a burst of requests queues on
// acquisition instead of exhausting the database.
func boundPool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}
