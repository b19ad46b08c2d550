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
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

// BaseSessionFactory owns the connection pool for the process lifetime and
// hands out exclusive sessions. It is built once at startup and passed to
// whatever runs units of work.
type BaseSessionFactory struct {
	config *ConnectionConfig
	db     *bun.DB
	sqlDB  *sql.DB
	logger Logger
}

var _ SessionOpener = (*BaseSessionFactory)(nil)

// NewSessionFactory validates cfg, opens the pool and checks connectivity.
// An error means the process cannot proceed.
func NewSessionFactory(ctx context.Context, cfg *Config) (*BaseSessionFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	connCfg := cfg.Connection
	f := &BaseSessionFactory{
		config: &connCfg,
		logger: GetLogger(),
	}

	var err error
	f.sqlDB, f.db, err = openDB(f.config, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, f.config.ConnectTimeout)
	defer cancel()
	if err := f.db.PingContext(ctxTimeout); err != nil {
		_ = f.db.Close()
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	f.logger.Info("Database connected successfully:", "type", f.config.Type, "host", f.config.Host, "dbname", f.config.DBName)
	return f, nil
}

// OpenSession acquires one dedicated connection from the pool.
func (f *BaseSessionFactory) OpenSession(ctx context.Context) (Session, error) {
	if f.db == nil {
		return nil, fmt.Errorf("session factory is closed")
	}
	session, err := newConnSession(ctx, f.db, f.config.isSQLite())
	if err != nil {
		return nil, err
	}
	f.logger.Debug("Session opened", "in_use", f.sqlDB.Stats().InUse)
	return session, nil
}

// DB returns the pooled Bun database. Units of work should use sessions.
func (f *BaseSessionFactory) DB() *bun.DB {
	return f.db
}

// Close closes the pool. Sessions must be released before.
func (f *BaseSessionFactory) Close() error {
	if f.db == nil {
		return nil
	}
	err := f.db.Close()
	f.db = nil
	f.sqlDB = nil
	if err != nil {
		f.logger.Error("Failed to close database connection", "error", err)
		return err
	}
	f.logger.Info("Database connection closed")
	return nil
}

// Stats reports pool usage; InUse drops back to zero once every session is closed.
func (f *BaseSessionFactory) Stats() sql.DBStats {
	if f.sqlDB == nil {
		return sql.DBStats{}
	}
	return f.sqlDB.Stats()
}
