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

// Package testdb builds throwaway SQLite stores for tests.
package testdb

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomoncle/librarian/configs"
	"github.com/tomoncle/librarian/database"
	"github.com/tomoncle/librarian/utils"
	"github.com/uptrace/bun"
)

// Config returns a SQLite configuration pointing into a per-test directory.
func Config(t testing.TB) *database.Config {
	t.Helper()
	cfg := database.DefaultConfig()
	cfg.Connection.Type = database.TypeSQLite
	cfg.Connection.DBName = filepath.Join(t.TempDir(), "librarian")
	return cfg
}

// NewFactory returns a session factory over a fresh SQLite file that already
// has the student, book and borrow tables. It is closed when the test ends.
func NewFactory(t testing.TB) *database.BaseSessionFactory {
	t.Helper()
	utils.ConfigureLogOutput(io.Discard)

	ctx := context.Background()
	factory, err := database.NewSessionFactory(ctx, Config(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = factory.Close() })

	require.NoError(t, CreateSchema(ctx, factory.DB()))
	return factory
}

// CreateSchema runs the bundled schema script against db.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	script, err := configs.Schema()
	if err != nil {
		return err
	}
	defer script.Close()

	if _, err := database.RunScript(ctx, db, script); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}
