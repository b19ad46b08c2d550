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
	"time"
)

// Supported values of ConnectionConfig.Type.
const (
	TypeMySQL      = "mysql"
	TypePostgres   = "postgres"
	TypePostgreSQL = "postgresql"
	TypeSQLite     = "sqlite"
	TypeSQLite3    = "sqlite3"
)

// ConnectionConfig describes how to connect to the store and tune its pool.
type ConnectionConfig struct {
	Type            string        `yaml:"type" json:"type" validate:"required,oneof=mysql postgres postgresql sqlite sqlite3"`
	Host            string        `yaml:"host" json:"host"`
	Port            int           `yaml:"port" json:"port" validate:"gte=0,lte=65535"`
	Username        string        `yaml:"username" json:"username"`
	Password        string        `yaml:"password" json:"-"`
	DBName          string        `yaml:"dbname" json:"dbname" validate:"required"`
	SSLMode         string        `yaml:"sslmode" json:"sslmode"`
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns" validate:"gte=0"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime" validate:"gte=0"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" json:"conn_max_idle_time" validate:"gte=0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" json:"connect_timeout" validate:"gte=0"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout" validate:"gte=0"`
	EnableQueryLog  bool          `yaml:"enable_query_log" json:"enable_query_log"`
	SlowQueryTime   time.Duration `yaml:"slow_query_time" json:"slow_query_time" validate:"gte=0"`
}

// LogConfig selects the level and console format of the process loggers.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
	Format string `yaml:"format" json:"format" validate:"omitempty,oneof=text json"`
}

// Config is the root of the configuration file.
type Config struct {
	Connection ConnectionConfig `yaml:"connection" json:"connection"`
	Log        LogConfig        `yaml:"log" json:"log"`
}

// DefaultConnectionConfig returns a connection config with sensible defaults.
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		MaxIdleConns:    2,
		MaxOpenConns:    10,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute * 30,
		ConnectTimeout:  time.Second * 10,
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		EnableQueryLog:  false,
		SlowQueryTime:   time.Second * 2,
	}
}

// DefaultConfig returns the configuration used before the file is applied.
func DefaultConfig() *Config {
	return &Config{
		Connection: *DefaultConnectionConfig(),
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

func (c *ConnectionConfig) isSQLite() bool {
	return c.Type == TypeSQLite || c.Type == TypeSQLite3
}
