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
	"errors"
	"fmt"

	"github.com/tomoncle/librarian/entity"
	"github.com/uptrace/bun"
)

type libraryRepository struct {
	students *baseRepositoryImpl[entity.Student]
	books    *baseRepositoryImpl[entity.Book]
	borrows  *baseRepositoryImpl[entity.Borrow]
}

// NewLibraryRepository binds the library operations to db.
func NewLibraryRepository(db bun.IDB) LibraryRepository {
	return &libraryRepository{
		students: newBaseRepository[entity.Student](db),
		books:    newBaseRepository[entity.Book](db),
		borrows:  newBaseRepository[entity.Borrow](db),
	}
}

func (r *libraryRepository) InsertStudent(ctx context.Context, student *entity.Student) (int64, error) {
	if err := validateEntity(student); err != nil {
		return 0, err
	}
	n, err := r.students.Create(ctx, student)
	if err != nil {
		return 0, fmt.Errorf("failed to insert student: %w", err)
	}
	return n, nil
}

func (r *libraryRepository) InsertBook(ctx context.Context, book *entity.Book) (int64, error) {
	if err := validateEntity(book); err != nil {
		return 0, err
	}
	n, err := r.books.Create(ctx, book)
	if err != nil {
		return 0, fmt.Errorf("failed to insert book: %w", err)
	}
	return n, nil
}

// InsertBorrow relies on the store's foreign keys to reject unknown ids.
func (r *libraryRepository) InsertBorrow(ctx context.Context, studentID, bookID int64) (int64, error) {
	borrow := &entity.Borrow{StudentID: studentID, BookID: bookID}
	n, err := r.borrows.Create(ctx, borrow)
	if err != nil {
		return 0, fmt.Errorf("failed to insert borrow (sid=%d, bid=%d): %w", studentID, bookID, err)
	}
	return n, nil
}

func (r *libraryRepository) GetStudentByID(ctx context.Context, id int64) (*entity.Student, error) {
	student, err := r.students.GetOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("student %d: %w", id, err)
	}
	return student, nil
}

func (r *libraryRepository) GetBookByID(ctx context.Context, id int64) (*entity.Book, error) {
	book, err := r.books.GetOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("book %d: %w", id, err)
	}
	return book, nil
}

// ListBorrows loads the borrow rows and then resolves each row with one
// student and one book lookup. Data volumes are small; a join would return
// the same values.
func (r *libraryRepository) ListBorrows(ctx context.Context) ([]*entity.Borrow, error) {
	borrows, err := r.borrows.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrows: %w", err)
	}
	for _, borrow := range borrows {
		if err := r.resolve(ctx, borrow); err != nil {
			return nil, err
		}
	}
	return borrows, nil
}

func (r *libraryRepository) resolve(ctx context.Context, borrow *entity.Borrow) error {
	student, err := r.GetStudentByID(ctx, borrow.StudentID)
	if err != nil {
		return unresolved(borrow, err)
	}
	book, err := r.GetBookByID(ctx, borrow.BookID)
	if err != nil {
		return unresolved(borrow, err)
	}
	borrow.Student = student
	borrow.Book = book
	return nil
}

func unresolved(borrow *entity.Borrow, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("borrow %d: %w: %w", borrow.ID, ErrUnresolvedReference, err)
	}
	return fmt.Errorf("borrow %d: %w", borrow.ID, err)
}

func (r *libraryRepository) ListStudents(ctx context.Context) ([]*entity.Student, error) {
	students, err := r.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (r *libraryRepository) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := r.books.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func validateEntity(v any) error {
	if err := entity.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}
	return nil
}
