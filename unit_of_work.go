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

package librarian

import (
	"context"
	"fmt"

	"github.com/tomoncle/librarian/database"
	"github.com/tomoncle/librarian/repository"
	"github.com/uptrace/bun"
)

// UnitOfWork runs caller logic against a repository bound to one exclusive
// session. Statements auto-commit; there is no transaction spanning them.
type UnitOfWork[R any] struct {
	opener  database.SessionOpener
	newRepo func(db bun.IDB) R
	logger  database.Logger
}

// NewUnitOfWork returns an executor that opens sessions from opener and binds
// them with newRepo.
func NewUnitOfWork[R any](opener database.SessionOpener, newRepo func(db bun.IDB) R) *UnitOfWork[R] {
	return &UnitOfWork[R]{
		opener:  opener,
		newRepo: newRepo,
		logger:  database.GetLogger(),
	}
}

// NewLibrary returns the unit of work used by every library action.
func NewLibrary(opener database.SessionOpener) *UnitOfWork[repository.LibraryRepository] {
	return NewUnitOfWork(opener, repository.NewLibraryRepository)
}

// SetLogger replaces the logger that reports session release failures.
func (u *UnitOfWork[R]) SetLogger(logger database.Logger) {
	if logger != nil {
		u.logger = logger
	}
}

// Do opens a session, calls work with a repository bound to it and closes the
// session exactly once, whether work returns, fails or panics. An error from
// work always wins over a failure to close the session.
func (u *UnitOfWork[R]) Do(ctx context.Context, work func(ctx context.Context, repo R) error) (err error) {
	session, err := u.opener.OpenSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer func() {
		closeErr := session.Close()
		if closeErr == nil {
			return
		}
		if err != nil {
			u.logger.Error("Failed to close session after unit of work failure", "error", closeErr, "cause", err)
			return
		}
		u.logger.Error("Failed to close session", "error", closeErr)
		err = fmt.Errorf("failed to close session: %w", closeErr)
	}()

	return work(ctx, u.newRepo(session.DB()))
}
