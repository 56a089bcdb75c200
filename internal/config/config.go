package config

import "os"

const (
	defaultInputPath  = "input.txt"
	defaultOutputPath = "report.txt"
)

// Config holds the file paths for one run. Values come from the environment
// with conventional defaults; CLI flags may override them afterwards.
type Config struct {
	InputPath  string
	OutputPath string
}

func New() *Config {
	return &Config{
		InputPath:  getEnv("INPUT_FILE", defaultInputPath),
		OutputPath: getEnv("OUTPUT_FILE", defaultOutputPath),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
