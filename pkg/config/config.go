package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Menu  MenuConfig
	Debug DebugConfig
}

// MenuConfig points at optional workbook overrides for the embedded menus.
type MenuConfig struct {
	GrubHubWorkbook  string
	DoorDashWorkbook string
}

type DebugConfig struct {
	PrintLines bool
	DumpDir    string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Menu: MenuConfig{
			GrubHubWorkbook:  getEnv("GRUBHUB_MENU_WORKBOOK", ""),
			DoorDashWorkbook: getEnv("DOORDASH_MENU_WORKBOOK", ""),
		},
		Debug: DebugConfig{
			PrintLines: getEnvAsBool("DEBUG_PRINT_LINES", false),
			DumpDir:    getEnv("DOORDASH_DUMP_DIR", "dump"),
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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
