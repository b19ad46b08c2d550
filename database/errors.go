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
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// SQLError is the driver-independent kind of a store error.
type SQLError int

const (
	UnknownErr SQLError = iota
	NoRowsErr
	NoTableErr
	NoColumnErr
	DuplicateKeyErr
	NotNullViolationErr
	ForeignKeyViolationErr
	CheckConstraintViolationErr
	DataTruncatedErr
)

func (e SQLError) String() string {
	switch e {
	case NoRowsErr:
		return "no rows"
	case NoTableErr:
		return "no table"
	case NoColumnErr:
		return "no column"
	case DuplicateKeyErr:
		return "duplicate key"
	case NotNullViolationErr:
		return "not null violation"
	case ForeignKeyViolationErr:
		return "foreign key violation"
	case CheckConstraintViolationErr:
		return "check constraint violation"
	case DataTruncatedErr:
		return "data truncated"
	default:
		return "unknown"
	}
}

// IsConstraintViolation reports whether the store rejected the row itself.
func (e SQLError) IsConstraintViolation() bool {
	switch e {
	case DuplicateKeyErr, NotNullViolationErr, ForeignKeyViolationErr, CheckConstraintViolationErr:
		return true
	default:
		return false
	}
}

// ClassifySQLError maps err to a SQLError. ok is false when err does not look
// like a store error at all.
func ClassifySQLError(err error) (kind SQLError, ok bool) {
	if err == nil {
		return UnknownErr, false
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NoRowsErr, true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1146:
			return NoTableErr, true
		case 1054:
			return NoColumnErr, true
		case 1062:
			return DuplicateKeyErr, true
		case 1048:
			return NotNullViolationErr, true
		case 1216, 1217, 1451, 1452:
			return ForeignKeyViolationErr, true
		case 3819:
			return CheckConstraintViolationErr, true
		case 1265, 1406:
			return DataTruncatedErr, true
		default:
			return UnknownErr, true
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "42P01":
			return NoTableErr, true
		case "42703":
			return NoColumnErr, true
		case "23505":
			return DuplicateKeyErr, true
		case "23502":
			return NotNullViolationErr, true
		case "23503":
			return ForeignKeyViolationErr, true
		case "23514":
			return CheckConstraintViolationErr, true
		case "22001":
			return DataTruncatedErr, true
		default:
			return UnknownErr, true
		}
	}

	// SQLite drivers only expose the message text.
	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "no such table"):
		return NoTableErr, true
	case strings.Contains(s, "no such column"):
		return NoColumnErr, true
	case strings.Contains(s, "unique constraint failed"):
		return DuplicateKeyErr, true
	case strings.Contains(s, "not null constraint failed"):
		return NotNullViolationErr, true
	case strings.Contains(s, "foreign key constraint failed"):
		return ForeignKeyViolationErr, true
	case strings.Contains(s, "check constraint failed"):
		return CheckConstraintViolationErr, true
	}
	return UnknownErr, false
}
