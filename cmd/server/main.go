package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"videoshare/cmd/config"
	"videoshare/pkg/database"
	"videoshare/pkg/handlers"
	"videoshare/pkg/media"
	"videoshare/pkg/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	config.Load()

	database.Init(config.DBDriver, config.DBDSN)

	store, err := newStore()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	durations := media.NewDurationCache(time.Hour, media.FFProbeDuration(config.ProbeTimeout))

	api := handlers.NewAPI(store, durations)

	r := gin.Default()
	handlers.Routes(r, api)
	if config.StorageDriver == "disk" {
		r.Static("/storage", config.StorageRoot)
	}

	if err := r.Run(config.ListenAddr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func newStore() (storage.Store, error) {
	if config.StorageDriver == "s3" {
		return storage.NewS3Store(config.AWSRegion, config.S3Bucket)
	}
	return storage.NewDiskStore(config.StorageRoot, config.StorageURL)
}
