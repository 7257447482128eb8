package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Persisted slot
	SlotBackend string
	SlotName    string

	SlotFilePath string
	SQLiteDBPath string
	BoltDBPath   string

	// Optional YAML file overriding the built-in category set
	CategoriesFile string
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8082"),

		SlotBackend: getEnv("SLOT_BACKEND", "memory"),
		SlotName:    getEnv("SLOT_NAME", "expenses"),

		SlotFilePath: getEnv("SLOT_FILE_PATH", "./data/expenses.json"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/kakeibo.db"),
		BoltDBPath:   getEnv("BOLT_DB_PATH", "./data/kakeibo.bolt"),

		CategoriesFile: getEnv("CATEGORIES_FILE", ""),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate slot backend
	validBackends := []string{"memory", "file", "sqlite", "bolt"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.SlotBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid slot backend '%s': must be one of %v", c.SlotBackend, validBackends))
	}

	if c.SlotName == "" {
		errors = append(errors, "slot name cannot be empty")
	}

	// Validate backend-specific paths
	switch c.SlotBackend {
	case "file":
		if c.SlotFilePath == "" {
			errors = append(errors, "slot file path cannot be empty when using file backend")
		} else {
			errors = append(errors, checkDir(c.SlotFilePath)...)
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			errors = append(errors, checkDir(c.SQLiteDBPath)...)
		}
	case "bolt":
		if c.BoltDBPath == "" {
			errors = append(errors, "bolt database path cannot be empty when using bolt backend")
		} else {
			errors = append(errors, checkDir(c.BoltDBPath)...)
		}
	}

	// Validate categories file if configured
	if c.CategoriesFile != "" {
		if _, err := os.Stat(c.CategoriesFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("categories file does not exist: %s", c.CategoriesFile))
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// checkDir verifies the parent directory exists or can be created.
func checkDir(path string) []string {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return []string{fmt.Sprintf("cannot create directory '%s': %v", dir, err)}
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
