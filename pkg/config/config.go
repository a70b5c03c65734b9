package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all engine configuration.
type Config struct {
	Pipeline PipelineConfig
	Log      LogConfig
}

type PipelineConfig struct {
	// ChunkSize is how many raw rows each pipeline batch canonicalizes
	// before yielding and reporting progress.
	ChunkSize int
	// SheetName overrides the worksheet used for workbook statements.
	// Empty means each bank's standard sheet.
	SheetName string
	// PDFPassword is the default credential tried on protected PDFs when
	// the caller supplies none.
	PDFPassword string
}

type LogConfig struct {
	Level string
	JSON  bool
}

// Load reads configuration from environment variables, consulting a .env
// file first when one exists in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Pipeline: PipelineConfig{
			ChunkSize:   getEnvAsInt("PIPELINE_CHUNK_SIZE", 200),
			SheetName:   getEnv("STATEMENT_SHEET_NAME", ""),
			PDFPassword: getEnv("PDF_PASSWORD", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			JSON:  getEnvAsBool("LOG_JSON", false),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
