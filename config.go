package main

import (
	"log"
	"os"
	"path"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostKey       string
	ServerAddress string
	S3AccessKey   string
	S3SecretKey   string
	S3Endpoint    string
	S3Region      string
	S3Bucket      string
	RootDir       string
	Workers       int
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// loadConfig reads RENDERER_ROOT_DIR/.env, if present, then the environment.
// Variables already set in the environment win over the file.
func loadConfig() *Config {
	rootDir := getEnv("RENDERER_ROOT_DIR", "/var/www/renderer")
	_ = godotenv.Load(path.Join(rootDir, ".env"))

	workers, err := strconv.Atoi(getEnv("RENDER_WORKERS", "0"))
	if err != nil {
		log.Printf("Warning: ignoring RENDER_WORKERS: %v", err)
		workers = 0
	}

	return &Config{
		PostKey:       os.Getenv("POST_KEY"),
		ServerAddress: getEnv("SERVER_ADDRESS", ":8001"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3Region:      os.Getenv("S3_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		RootDir:       rootDir,
		Workers:       workers,
	}
}
