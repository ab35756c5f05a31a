package database

import (
	"log"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"videoshare/pkg/models"
)

var DB *gorm.DB

// Init opens the database and runs migrations. driver is "sqlite3" or
// "postgres"; dsn is a file path for sqlite3, a connection string otherwise.
func Init(driver, dsn string) {
	var err error
	DB, err = Open(driver, dsn)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
}

func Open(driver, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	Migrate(db)
	return db, nil
}

func Migrate(db *gorm.DB) {
	db.AutoMigrate(&models.User{}, &models.Video{}, &models.Like{})
	// AutoMigrate on sqlite does not always pick up tag-declared composite
	// indexes on existing tables; add it explicitly so the like toggle can
	// rely on it.
	db.Model(&models.Like{}).AddUniqueIndex("idx_likes_user_video", "user_id", "video_id")
}
