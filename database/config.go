/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tomoncle/librarian/utils"
)

// ErrInvalidConfig marks every configuration failure. The process cannot
// continue without a valid configuration.
var ErrInvalidConfig = errors.New("invalid database configuration")

// LoadConfig reads the YAML file at path on top of DefaultConfig, applies
// environment overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %w", ErrInvalidConfig, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML content the same way LoadConfig does.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
	}
	overrideFromEnv(&cfg.Connection)
	overrideLogFromEnv(&cfg.Log)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and the rules that depend on the dialect.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: database configuration cannot be empty", ErrInvalidConfig)
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !c.Connection.isSQLite() {
		if c.Connection.Host == "" {
			return fmt.Errorf("%w: host is required for %s", ErrInvalidConfig, c.Connection.Type)
		}
		if c.Connection.Port == 0 {
			return fmt.Errorf("%w: port is required for %s", ErrInvalidConfig, c.Connection.Type)
		}
	}
	return nil
}

// overrideFromEnv overrides configuration values from environment variables.
func overrideFromEnv(cfg *ConnectionConfig) {
	if typ := os.Getenv("DB_TYPE"); typ != "" {
		cfg.Type = typ
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if username := os.Getenv("DB_USERNAME"); username != "" {
		cfg.Username = username
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.DBName = dbname
	}
	if sslmode := os.Getenv("DB_SSLMODE"); sslmode != "" {
		cfg.SSLMode = sslmode
	}
	if maxIdle := os.Getenv("DB_MAX_IDLE_CONNS"); maxIdle != "" {
		if val, err := strconv.Atoi(maxIdle); err == nil {
			cfg.MaxIdleConns = val
		}
	}
	if maxOpen := os.Getenv("DB_MAX_OPEN_CONNS"); maxOpen != "" {
		if val, err := strconv.Atoi(maxOpen); err == nil {
			cfg.MaxOpenConns = val
		}
	}
	if maxLifetime := os.Getenv("DB_CONN_MAX_LIFETIME"); maxLifetime != "" {
		if val, err := strconv.Atoi(maxLifetime); err == nil {
			cfg.ConnMaxLifetime = time.Duration(val) * time.Second
		}
	}
	cfg.EnableQueryLog = utils.EnvDefaultBool("DB_ENABLE_QUERY_LOG", cfg.EnableQueryLog)
	if slow := os.Getenv("DB_SLOW_QUERY_TIME"); slow != "" {
		if val, err := time.ParseDuration(slow); err == nil {
			cfg.SlowQueryTime = val
		}
	}
}

// overrideLogFromEnv lets LOG_LEVEL and CONSOLE_LOG_FORMAT win over the file.
func overrideLogFromEnv(cfg *LogConfig) {
	cfg.Level = utils.EnvDefaultString("LOG_LEVEL", cfg.Level)
	cfg.Format = utils.EnvDefaultString("CONSOLE_LOG_FORMAT", cfg.Format)
}
