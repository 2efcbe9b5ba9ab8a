package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

func requiredString(key string) (string, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return "", fmt.Errorf("missing required env var: %s", key)
	}
	return variable, nil
}

func stringWithDefault(key, def string) string {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def
	}
	return variable
}

func intWithDefault(key string, def int) (int, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def, nil
	}
	number, err := strconv.Atoi(variable)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %w", key, err)
	}
	return number, nil
}

func durationWithDefault(key string, def time.Duration) (time.Duration, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def, nil
	}
	duration, err := time.ParseDuration(variable)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return duration, nil
}
