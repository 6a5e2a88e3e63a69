package extractfx

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// Config represents the extractfx configuration
type Config struct {
	// FunctionName is the call emitted around rewritten f literals. A
	// trailing '*' is substituted with the argument count.
	FunctionName string `yaml:"function_name"`
	// LineDirectives inserts #line markers pointing diagnostics on the
	// rewritten code back at the original source positions.
	LineDirectives bool `yaml:"line_directives"`
	// Extensions lists the file suffixes treated as C++ sources.
	Extensions []string `yaml:"extensions"`
}

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "extractfx.yaml"

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		// Return default configuration if file doesn't exist
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate the configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// Apply defaults for missing values
	applyDefaults(&config)

	// Expand environment variables
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	// The function name placeholder is only meaningful at the end, where
	// the argument count is substituted.
	if i := strings.Index(config.FunctionName, "*"); i >= 0 && i != len(config.FunctionName)-1 {
		return fmt.Errorf("%w: function_name %q: '*' is only allowed as the last character", ErrConfigValidation, config.FunctionName)
	}

	for _, ext := range config.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrConfigValidation, ext)
		}
	}

	return nil
}

// getDefaultConfig returns the configuration used when no file exists
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

// applyDefaults fills in defaults for missing values
func applyDefaults(config *Config) {
	if config.FunctionName == "" {
		config.FunctionName = "std::format"
	}

	if len(config.Extensions) == 0 {
		config.Extensions = []string{".cpp", ".cxx", ".cc", ".h", ".hpp", ".ipp"}
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	// Try to load .env file from current directory
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in config
func expandConfigEnvVars(config *Config) {
	config.FunctionName = expandEnvVars(config.FunctionName)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
