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
	"fmt"
	"sync/atomic"

	"github.com/uptrace/bun"
)

// Session is an exclusive, short-lived handle to one pooled connection.
// Every statement issued through DB commits on its own.
type Session interface {
	DB() bun.IDB
	Close() error
}

// SessionOpener produces sessions; it is what a unit of work depends on.
type SessionOpener interface {
	OpenSession(ctx context.Context) (Session, error)
}

type connSession struct {
	conn   bun.Conn
	closed atomic.Bool
}

func (s *connSession) DB() bun.IDB {
	return &s.conn
}

// Close returns the connection to the pool. Later calls are no-ops.
func (s *connSession) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.conn.Close()
}

func newConnSession(ctx context.Context, db *bun.DB, sqlite bool) (Session, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	if sqlite {
		// foreign keys are a per-connection setting in SQLite
		if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}
	return &connSession{conn: conn}, nil
}
