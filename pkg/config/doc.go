// Package config fills tagged structs from environment variables using
// github.com/caarlos0/env, after optionally loading dotenv files with
// github.com/joho/godotenv.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load reads ".env" from the working directory when it exists. Variables that
// are already set in the process environment take precedence over dotenv
// values.
package config
