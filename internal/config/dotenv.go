package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// dotEnvFile is the file loaded by [loadDotEnv], relative to the working
// directory.
var dotEnvFile = ".env"

// loadDotEnv copies the variables of the .env file into the process
// environment. Variables that are already set are left untouched, so the
// real environment always wins. A missing file is not an error.
func loadDotEnv() error {
	err := godotenv.Load(dotEnvFile)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading %s file: %w", dotEnvFile, err)
}
