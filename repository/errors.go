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

package repository

import (
	"errors"
	"fmt"

	"github.com/tomoncle/librarian/database"
)

var (
	// ErrNotFound means the looked-up row does not exist. It is an outcome,
	// not a store failure.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation means the store rejected a write, e.g. a borrow
	// referencing a missing student or book.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidEntity means the entity was rejected before reaching the store.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnresolvedReference means a borrow points at a row that cannot be loaded.
	ErrUnresolvedReference = errors.New("unresolved borrow reference")
)

// translateError maps store errors onto the repository sentinels, keeping the
// original error in the chain.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	kind, ok := database.ClassifySQLError(err)
	switch {
	case ok && kind == database.NoRowsErr:
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case ok && kind.IsConstraintViolation():
		return fmt.Errorf("%s: %w (%s): %w", op, ErrConstraintViolation, kind, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
