package helpers

import (
	"os"
	"strconv"
)

// GetStringFromEnv returns the value of key, or defaultValue when it is unset or empty.
//
// Example:
//
//	format := helpers.GetStringFromEnv("TOOLBIND_LOG_FORMAT", "console")
func GetStringFromEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBoolFromEnv returns key parsed with strconv.ParseBool, or defaultValue when it is
// unset, empty or not a boolean.
func GetBoolFromEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetOptionalBoolFromEnv is GetBoolFromEnv for tri-state settings: it returns nil when key
// is unset, empty or not a boolean, so callers can tell "off" from "not configured".
//
// Example:
//
//	strict := helpers.GetOptionalBoolFromEnv("TOOLBIND_STRICT") // nil, &true or &false
func GetOptionalBoolFromEnv(key string) *bool {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &boolValue
}
