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
	"context"

	"github.com/tomoncle/librarian/entity"
)

// CrudRepository is the generic per-table persistence used by the library.
type CrudRepository[T any] interface {
	// GetOne returns ErrNotFound when no row has the id.
	GetOne(ctx context.Context, id any) (*T, error)

	GetAll(ctx context.Context) ([]*T, error)

	// Create inserts the entity, fills its store-assigned id and returns
	// the number of affected rows.
	Create(ctx context.Context, entity *T) (int64, error)
}

// LibraryRepository is the set of data operations available inside a unit of
// work. Every call blocks until the store answers.
type LibraryRepository interface {
	InsertStudent(ctx context.Context, student *entity.Student) (int64, error)
	InsertBook(ctx context.Context, book *entity.Book) (int64, error)
	InsertBorrow(ctx context.Context, studentID, bookID int64) (int64, error)

	GetStudentByID(ctx context.Context, id int64) (*entity.Student, error)
	GetBookByID(ctx context.Context, id int64) (*entity.Book, error)

	// ListBorrows returns every borrow with Student and Book resolved.
	ListBorrows(ctx context.Context) ([]*entity.Borrow, error)
	ListStudents(ctx context.Context) ([]*entity.Student, error)
	ListBooks(ctx context.Context) ([]*entity.Book, error)
}
