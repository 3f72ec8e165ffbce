/*
Copyright 2026 the CDP Integration Test Authors.

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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRequestTimeout is deliberately huge, some server operations such
	// as a restore or a deep model export take minutes on a cold database.
	DefaultRequestTimeout = 10 * time.Minute


	// DefaultViewerUsername is the seeded person without update permissions.
	DefaultViewerUsername = "viewer"
	DefaultViewerPassword = "pass"
)

// settingsPaths are tried in order when CDP_SETTINGS_FILE is not set. All
// of them name test/settings.yaml from the usual working directories.
var settingsPaths = []string{
	"../../settings.yaml",    // From test/api/suites directory
	"../../../settings.yaml", // From test/contracts/consumer/*
	"test/settings.yaml",     // From the repository root, e.g. cmd/cdp-dataset
}

var ErrMissingConfiguration = errors.New("missing required configuration")

type TestConfig struct {
	Hostname          string
	Username          string
	Password          string
	ViewerUsername    string
	ViewerPassword    string
	RequestTimeout    time.Duration
	DefaultVersion    string
	SkipIntegration   bool
	ValidateResponses bool
	LogRequests       bool
	LogResponses      bool
}

// settingsFile is the on-disk form of the suite settings.
type settingsFile struct {
	Hostname          string `yaml:"hostname"`
	Username          string `yaml:"username"`
	Password          string `yaml:"password"`
	ViewerUsername    string `yaml:"viewerUsername"`
	ViewerPassword    string `yaml:"viewerPassword"`
	RequestTimeout    string `yaml:"requestTimeout"`
	DefaultVersion    string `yaml:"defaultVersion"`
	ValidateResponses bool   `yaml:"validateResponses"`
}

// DefaultTestConfig returns a configuration with everything but the
// connection details filled in.
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		ViewerUsername: DefaultViewerUsername,
		ViewerPassword: DefaultViewerPassword,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// LoadTestConfig loads configuration from the settings file, .env files and
// the environment, in that order of increasing precedence.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := DefaultTestConfig()

	if path := os.Getenv("CDP_SETTINGS_FILE"); path != "" {
		if err := config.loadSettingsFile(path); err != nil {
			return nil, err
		}
	} else if path := firstExisting(settingsPaths); path != "" {
		if err := config.loadSettingsFile(path); err != nil {
			return nil, err
		}
	}

	config.applyEnvironment()

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// firstExisting returns the first path that exists, or an empty string.
func firstExisting(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadSettingsFile overlays values from a YAML settings file.
func (c *TestConfig) loadSettingsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var settings settingsFile
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	if settings.Hostname != "" {
		c.Hostname = settings.Hostname
	}

	if settings.Username != "" {
		c.Username = settings.Username
	}

	if settings.Password != "" {
		c.Password = settings.Password
	}

	if settings.ViewerUsername != "" {
		c.ViewerUsername = settings.ViewerUsername
	}

	if settings.ViewerPassword != "" {
		c.ViewerPassword = settings.ViewerPassword
	}

	if settings.DefaultVersion != "" {
		c.DefaultVersion = settings.DefaultVersion
	}

	if settings.RequestTimeout != "" {
		timeout, err := time.ParseDuration(settings.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parsing settings file %s: invalid requestTimeout: %w", path, err)
		}

		c.RequestTimeout = timeout
	}

	c.ValidateResponses = c.ValidateResponses || settings.ValidateResponses

	return nil
}

func (c *TestConfig) applyEnvironment() {
	c.Hostname = getWithDefault("CDP_HOSTNAME", c.Hostname)
	c.Username = getWithDefault("CDP_USERNAME", c.Username)
	c.Password = getWithDefault("CDP_PASSWORD", c.Password)
	c.ViewerUsername = getWithDefault("CDP_VIEWER_USERNAME", c.ViewerUsername)
	c.ViewerPassword = getWithDefault("CDP_VIEWER_PASSWORD", c.ViewerPassword)
	c.DefaultVersion = getWithDefault("CDP_VERSION", c.DefaultVersion)
	c.RequestTimeout = getDurationWithDefault("REQUEST_TIMEOUT", c.RequestTimeout)
	c.SkipIntegration = getBoolWithDefault("SKIP_INTEGRATION", c.SkipIntegration)
	c.ValidateResponses = getBoolWithDefault("VALIDATE_RESPONSES", c.ValidateResponses)
	c.LogRequests = getBoolWithDefault("LOG_REQUESTS", c.LogRequests)
	c.LogResponses = getBoolWithDefault("LOG_RESPONSES", c.LogResponses)
}

func getWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
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
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/*
		"test/.env",     // From the repository root
	}

	path := firstExisting(envPaths)
	if path == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	envPath, err := filepath.Abs(path)
	if err != nil {
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"CDP_HOSTNAME": config.Hostname,
		"CDP_USERNAME": config.Username,
		"CDP_PASSWORD": config.Password,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("%w: %s. Please set these environment variables, add them to a .env file or the settings file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
