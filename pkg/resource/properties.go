package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"go-weather/configs"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads the bundled application.yml, then the file at PROPERTIES_FILE_PATH (or configs/application.yml) on top of it
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	if err := Init(value); err != nil {
		fmt.Fprintf(os.Stderr, "resource: %v\n", err)
	}
}

// Init reloads properties from the bundled defaults and the optional file at filepath.
// A missing file is not an error; a malformed one is.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(configs.ApplicationYAML)); err != nil {
		return fmt.Errorf("failed to read bundled properties: %w", err)
	}

	if filepath != "" {
		content, err := os.ReadFile(filepath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return fmt.Errorf("failed to read properties file %s: %w", filepath, err)
		default:
			if err := v.MergeConfig(bytes.NewReader(content)); err != nil {
				return fmt.Errorf("failed to parse properties file %s: %w", filepath, err)
			}
		}
	}

	resolved := make(map[string]any)
	flatten("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	mu.Lock()
	properties = v
	mu.Unlock()
	return nil
}

// flatten walks the YAML tree and resolves ${ENV:default} placeholders on string leaves
func flatten(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			flatten(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} in value with the environment value or the default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		parts := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(parts[1]); exists {
			return envValue
		}
		return parts[2]
	})
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func IsSet(key string) bool {
	return current().IsSet(key)
}

func GetString(key string) string {
	return strings.TrimSpace(current().GetString(key))
}

// GetStringOrDefault returns the property, or defaultValue when it is empty
func GetStringOrDefault(key, defaultValue string) string {
	if value := GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

// GetDurationOrDefault returns the property, or defaultValue when it is unset or not positive
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return current().GetInt(key)
}

// GetIntOrDefault returns the property, or defaultValue when it is unset or zero
func GetIntOrDefault(key string, defaultValue int) int {
	if value := GetInt(key); value != 0 {
		return value
	}
	return defaultValue
}

func GetFloat64(key string) float64 {
	return current().GetFloat64(key)
}
