package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded by Load when present.
const DefaultEnvFile = ".env"

// Load parses the environment into v. A missing default dotenv file is not
// an error.
func Load[T any](v *T) error {
	if err := loadEnvFiles(false, DefaultEnvFile); err != nil {
		return err
	}
	return Parse(v)
}

// LoadFrom is Load with explicit dotenv files, all of which must exist.
// Earlier files win over later ones, and the process environment wins over both.
func LoadFrom[T any](v *T, files ...string) error {
	if err := loadEnvFiles(true, files...); err != nil {
		return err
	}
	return Parse(v)
}

// Parse fills v from the current process environment only.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(strict bool, files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !strict && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnv, fmt.Errorf("%s: %w", f, err))
		}
	}
	return nil
}
