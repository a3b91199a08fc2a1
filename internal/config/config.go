package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the prediction service.
type Config struct {
	Host        string
	Port        int
	ModelPath   string
	ImageSize   int      // model input height and width in pixels
	ClassNames  []string // ordered class label table, index-aligned with model output
	LogDir      string   // empty disables file logging
	MaxUploadMB int64
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
func Load() *Config {
	// Missing .env is fine, plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Host:        getEnv("HOST", "127.0.0.1"),
		Port:        getEnvAsInt("PORT", 9000),
		ModelPath:   getEnv("MODEL_PATH", "models/model_1.onnx"),
		ImageSize:   getEnvAsInt("IMAGE_SIZE", 256),
		ClassNames:  getEnvAsList("CLASS_NAMES", []string{"Early_blight", "Late_blight", "Healthy"}),
		LogDir:      getEnv("LOG_DIR", ""),
		MaxUploadMB: int64(getEnvAsInt("MAX_UPLOAD_MB", 10)),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
