package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// GetEnv reads an environment variable and converts it to T, returning
// defaultValue if the variable is unset or empty.
func GetEnv[T bool | int | string](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}
	parsed, err := parseEnv[T](envVarName, envValue)
	if err != nil {
		panic(err)
	}
	return parsed
}

// GetRequiredEnv is like GetEnv but terminates the process if the variable
// is missing.
func GetRequiredEnv[T bool | int | string](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}
	parsed, err := parseEnv[T](envVarName, envValue)
	if err != nil {
		log.Fatal(err)
	}
	return parsed
}

func parseEnv[T bool | int | string](envVarName, envValue string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(envValue).(T), nil
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s is not valid: '%s' is not an integer", envVarName, envValue)
		}
		return any(intValue).(T), nil
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s is not valid: '%s' is not a boolean", envVarName, envValue)
		}
		return any(boolValue).(T), nil
	}
	return zero, fmt.Errorf("unsupported type for environment variable %s", envVarName)
}
