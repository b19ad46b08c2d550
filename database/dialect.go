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
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

// openDB opens the database/sql handle for the configured dialect and wraps
// it in a Bun DB with the matching dialect and query hooks.
func openDB(cfg *ConnectionConfig, logger Logger) (*sql.DB, *bun.DB, error) {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 30 * time.Second
	}

	var sqlDB *sql.DB
	var db *bun.DB
	var err error

	switch cfg.Type {
	case TypeMySQL:
		sqlDB, db, err = openMySQL(cfg)
	case TypePostgres, TypePostgreSQL:
		sqlDB, db, err = openPostgreSQL(cfg)
	case TypeSQLite, TypeSQLite3:
		sqlDB, db, err = openSQLite(cfg)
	default:
		return nil, nil, fmt.Errorf("%w: unsupported database type: %s", ErrInvalidConfig, cfg.Type)
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.EnableQueryLog {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(true),
			bundebug.FromEnv("BUNDEBUG"),
		))
	}
	if cfg.SlowQueryTime > 0 {
		db.AddQueryHook(&slowQueryHook{
			slowTime: cfg.SlowQueryTime,
			logger:   logger,
		})
	}

	configurePool(sqlDB, cfg)
	return sqlDB, db, nil
}

func openMySQL(cfg *ConnectionConfig) (*sql.DB, *bun.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%s&readTimeout=%s&writeTimeout=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.ConnectTimeout,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
	)
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, err
	}
	return sqlDB, bun.NewDB(sqlDB, mysqldialect.New()), nil
}

func openPostgreSQL(cfg *ConnectionConfig) (*sql.DB, *bun.DB, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&connect_timeout=%d",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		sslMode,
		int(cfg.ConnectTimeout.Seconds()),
	)
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}
	return sqlDB, bun.NewDB(sqlDB, pgdialect.New()), nil
}

func openSQLite(cfg *ConnectionConfig) (*sql.DB, *bun.DB, error) {
	sqlDB, err := sql.Open(sqliteshim.ShimName, sqliteDSN(cfg.DBName))
	if err != nil {
		return nil, nil, err
	}
	return sqlDB, bun.NewDB(sqlDB, sqlitedialect.New()), nil
}

// sqliteDSN maps a dbname to a file name; ":memory:" is kept as is.
func sqliteDSN(name string) string {
	if name == ":memory:" || strings.HasSuffix(name, ".db") || strings.HasSuffix(name, ".sqlite") {
		return name
	}
	return name + ".db"
}

func configurePool(sqlDB *sql.DB, cfg *ConnectionConfig) {
	// every in-memory connection sees its own empty database, so keep exactly one alive
	if cfg.isSQLite() && cfg.DBName == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
		return
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
}
