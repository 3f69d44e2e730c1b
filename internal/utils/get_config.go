package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	ServerPort  string `yaml:"SERVER_PORT"`
	MetricsPort string `yaml:"METRICS_PORT"`

	// Persistence configuration
	DBPath string `yaml:"DB_PATH"`

	// Google Maps configuration
	GoogleMapsAPIKey  string `yaml:"GOOGLE_MAPS_API_KEY"`
	GoogleMapsBaseURL string `yaml:"GOOGLE_MAPS_BASE_URL"`

	// OpenAI configuration
	OpenAIAPIKey string `yaml:"OPENAI_API_KEY"`
	OpenAIModel  string `yaml:"OPENAI_MODEL"`

	// Ordering configuration. Pointers distinguish a key absent from the
	// file from an explicit zero.
	OrderConfirmDelayMS  *int `yaml:"ORDER_CONFIRM_DELAY_MS"`
	DefaultSearchRadiusM *int `yaml:"DEFAULT_SEARCH_RADIUS_M"`
}

var config Config

func LoadConfig(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	var loaded Config
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Environment variables win over the file so deployments can override
	// secrets without editing config.yaml.
	if v := os.Getenv("GOOGLE_MAPS_API_KEY"); v != "" {
		loaded.GoogleMapsAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		loaded.OpenAIAPIKey = v
	}
	config = loaded
}

func GetConfig(key string) string {
	switch key {
	case "SERVER_PORT":
		return config.ServerPort
	case "METRICS_PORT":
		return config.MetricsPort
	case "DB_PATH":
		return config.DBPath
	case "GOOGLE_MAPS_API_KEY":
		return config.GoogleMapsAPIKey
	case "GOOGLE_MAPS_BASE_URL":
		return config.GoogleMapsBaseURL
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_MODEL":
		return config.OpenAIModel
	default:
		return ""
	}
}

// GetConfigInt returns an integer setting, falling back to def only when the
// key is absent from the file. An explicit zero is honored.
func GetConfigInt(key string, def int) int {
	var v *int
	switch key {
	case "ORDER_CONFIRM_DELAY_MS":
		v = config.OrderConfirmDelayMS
	case "DEFAULT_SEARCH_RADIUS_M":
		v = config.DefaultSearchRadiusM
	}
	if v == nil || *v < 0 {
		return def
	}
	return *v
}
