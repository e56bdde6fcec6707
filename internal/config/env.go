package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Переменные окружения, задающие значения флагов по умолчанию.
const (
	EnvSeed       = "DEFENSE_SEED"
	EnvDifficulty = "DEFENSE_DIFFICULTY"
	EnvListen     = "DEFENSE_LISTEN"
	EnvEnemies    = "DEFENSE_ENEMIES"
)

// LoadEnv reads .env style files into the process environment. Variables
// already set win. A missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		log.Printf("Loaded environment from %s", f)
	}
	return nil
}

// Env returns the variable or fallback when it is unset or empty.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvInt64 is Env for integers; an unparsable value yields fallback.
func EnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
