package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads tool path overrides from a .env file.
// ENV_PATH takes precedence over defaultPath. A missing file is only an error
// when the caller asked for it explicitly.
func LoadDotEnv(defaultPath string, explicit bool) error {
	envPath := defaultPath
	if p := os.Getenv("ENV_PATH"); p != "" {
		envPath = p
		explicit = true
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded .env", "path", envPath)
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}
	return err
}

// Lookup adapts os.LookupEnv to the signature used by config overrides.
func Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
