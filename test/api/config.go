/*
Copyright 2026 the Suitest Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/SuitestAutomation/translate-demo/pkg/networkapi"
)

type TestConfig struct {
	BaseURL         string
	TokenID         string
	TokenPassword   string
	TestPackRunID   string
	TestResultID    string
	AppID           string
	VersionID       string
	RequestTimeout  time.Duration
	SkipIntegration bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	baseURL := os.Getenv("NETWORK_API_URL")
	if baseURL == "" {
		baseURL = networkapi.DefaultBaseURL
	}

	config := &TestConfig{
		BaseURL:         baseURL,
		TokenID:         os.Getenv("SUITEST_TOKEN_ID"),
		TokenPassword:   os.Getenv("SUITEST_TOKEN_PASSWORD"),
		TestPackRunID:   os.Getenv("TEST_PACK_RUN_ID"),
		TestResultID:    os.Getenv("TEST_RESULT_ID"),
		AppID:           os.Getenv("TEST_APP_ID"),
		VersionID:       os.Getenv("TEST_VERSION_ID"),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Credentials returns the token pair the suite authenticates with.
func (c *TestConfig) Credentials() networkapi.Credentials {
	return networkapi.Credentials{
		TokenID:       c.TokenID,
		TokenPassword: c.TokenPassword,
	}
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := []struct {
		envVar string
		value  string
	}{
		{"SUITEST_TOKEN_ID", config.TokenID},
		{"SUITEST_TOKEN_PASSWORD", config.TokenPassword},
		{"TEST_PACK_RUN_ID", config.TestPackRunID},
		{"TEST_RESULT_ID", config.TestResultID},
		{"TEST_APP_ID", config.AppID},
		{"TEST_VERSION_ID", config.VersionID},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(missing, ", "))
	}

	return nil
}
