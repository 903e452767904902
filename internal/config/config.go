package config // package config loads client configuration from environment variables

import (
	"log"           // log reports configuration errors
	"os"            // os provides access to environment variables
	"path/filepath" // filepath builds the default credential DB path
	"strconv"       // strconv converts strings to other types
	"time"          // time expresses the HTTP timeout

	"github.com/joho/godotenv" // loads a .env file into the environment if present
)

// Config holds all runtime configuration of the client.  Every value has a
// sensible default so the tool works out of the box against a local
// backend; a .env file or exported variables override them.
type Config struct {
	BaseURL     string        // CAMPUS_API_URL: base URL of the backend
	TokenDBPath string        // CAMPUS_TOKEN_DB: path of the credential store
	HTTPTimeout time.Duration // CAMPUS_HTTP_TIMEOUT_SECONDS: transport timeout
}

// Load reads configuration from the environment, after merging in a .env
// file when one exists in the working directory.  Missing variables fall
// back to defaults; only a malformed timeout is fatal.
func Load() Config {
	// Best effort: a missing .env simply means the environment is already set.
	_ = godotenv.Load()

	return Config{
		BaseURL:     getEnv("CAMPUS_API_URL", "http://localhost:8888"),
		TokenDBPath: getEnv("CAMPUS_TOKEN_DB", defaultTokenDBPath()),
		HTTPTimeout: time.Duration(getEnvInt("CAMPUS_HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// getEnv returns the value of an environment variable, or the fallback
// when the variable is unset or empty.
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getEnvInt is like getEnv but converts the value to an integer.  A value
// that is present but not numeric is a configuration mistake and halts
// the program.
func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

// defaultTokenDBPath places the credential store under the user's config
// directory, falling back to the working directory when none is known.
func defaultTokenDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "campusctl.db"
	}
	return filepath.Join(dir, "campusctl", "credentials.db")
}
