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

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/librarian/entity"
	"github.com/tomoncle/librarian/internal/testdb"
	"github.com/tomoncle/librarian/repository"
)

func newRepository(t *testing.T) repository.LibraryRepository {
	t.Helper()
	factory := testdb.NewFactory(t)
	session, err := factory.OpenSession(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return repository.NewLibraryRepository(session.DB())
}

func TestInsertStudent(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	students := []*entity.Student{
		entity.NewStudent("Alice", entity.SexFemale, 2021),
		entity.NewStudent("Bob", entity.SexMale, 2020),
	}
	for _, s := range students {
		n, err := repo.InsertStudent(ctx, s)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
		assert.NotZero(t, s.ID)
	}
	assert.NotEqual(t, students[0].ID, students[1].ID)

	listed, err := repo.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for i, s := range listed {
		assert.Equal(t, students[i].ID, s.ID)
		assert.Equal(t, students[i].Name, s.Name)
		assert.Equal(t, students[i].Sex, s.Sex)
		assert.Equal(t, students[i].Grade, s.Grade)
	}
}

func TestInsertStudentInvalid(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	n, err := repo.InsertStudent(ctx, entity.NewStudent("", entity.SexMale, 2020))
	assert.ErrorIs(t, err, repository.ErrInvalidEntity)
	assert.Zero(t, n)

	listed, err := repo.ListStudents(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestInsertBookAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	book := entity.NewBook("Algorithms", "intro text", 49.99)
	n, err := repo.InsertBook(ctx, book)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	found, err := repo.GetBookByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, found.ID)
	assert.Equal(t, "Algorithms", found.Title)
	assert.Equal(t, "intro text", found.Info)
	assert.Equal(t, 49.99, found.Price)

	_, err = repo.InsertBook(ctx, entity.NewBook("Negative", "", -1))
	assert.ErrorIs(t, err, repository.ErrInvalidEntity)

	books, err := repo.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	student, err := repo.GetStudentByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, student)

	book, err := repo.GetBookByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, book)
}

func TestInsertBorrow(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	alice := entity.NewStudent("Alice", entity.SexFemale, 2021)
	_, err := repo.InsertStudent(ctx, alice)
	require.NoError(t, err)
	book := entity.NewBook("Algorithms", "intro text", 49.99)
	_, err = repo.InsertBook(ctx, book)
	require.NoError(t, err)

	t.Run("unknown student", func(t *testing.T) {
		n, err := repo.InsertBorrow(ctx, 999, book.ID)
		assert.ErrorIs(t, err, repository.ErrConstraintViolation)
		assert.Zero(t, n)
	})
	t.Run("unknown book", func(t *testing.T) {
		_, err := repo.InsertBorrow(ctx, alice.ID, 999)
		assert.ErrorIs(t, err, repository.ErrConstraintViolation)
	})
	t.Run("nothing listed after failures", func(t *testing.T) {
		borrows, err := repo.ListBorrows(ctx)
		require.NoError(t, err)
		assert.Empty(t, borrows)
	})
	t.Run("existing references", func(t *testing.T) {
		n, err := repo.InsertBorrow(ctx, alice.ID, book.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		borrows, err := repo.ListBorrows(ctx)
		require.NoError(t, err)
		require.Len(t, borrows, 1)
		assert.True(t, borrows[0].Resolved())
		assert.Equal(t, "Alice", borrows[0].Student.Name)
		assert.Equal(t, "Algorithms", borrows[0].Book.Title)
	})
}

func TestListBorrowsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	alice := entity.NewStudent("Alice", entity.SexFemale, 2021)
	bob := entity.NewStudent("Bob", entity.SexMale, 2020)
	for _, s := range []*entity.Student{alice, bob} {
		_, err := repo.InsertStudent(ctx, s)
		require.NoError(t, err)
	}
	book := entity.NewBook("Algorithms", "intro text", 49.99)
	_, err := repo.InsertBook(ctx, book)
	require.NoError(t, err)

	_, err = repo.InsertBorrow(ctx, alice.ID, book.ID)
	require.NoError(t, err)
	_, err = repo.InsertBorrow(ctx, bob.ID, book.ID)
	require.NoError(t, err)

	first, err := repo.ListBorrows(ctx)
	require.NoError(t, err)
	second, err := repo.ListBorrows(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.Len(t, first, 2)
	assert.Equal(t, "Bob", first[1].Student.Name)
	// each borrow owns its own copy of the shared book
	assert.NotSame(t, first[0].Book, first[1].Book)
	assert.Equal(t, first[0].Book, first[1].Book)
}

func TestListBorrowsUnresolvedReference(t *testing.T) {
	ctx := context.Background()
	factory := testdb.NewFactory(t)
	session, err := factory.OpenSession(ctx)
	require.NoError(t, err)
	defer session.Close()

	db := session.DB()
	_, err = db.ExecContext(ctx, "PRAGMA foreign_keys = OFF")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO borrow (sid, bid) VALUES (77, 78)")
	require.NoError(t, err)

	borrows, err := repository.NewLibraryRepository(db).ListBorrows(ctx)
	assert.ErrorIs(t, err, repository.ErrUnresolvedReference)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, borrows)
}

func TestCrudRepository(t *testing.T) {
	ctx := context.Background()
	factory := testdb.NewFactory(t)
	session, err := factory.OpenSession(ctx)
	require.NoError(t, err)
	defer session.Close()

	books := repository.NewRepository[entity.Book](session.DB())
	all, err := books.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	book := entity.NewBook("Compilers", "dragon book", 80)
	n, err := books.Create(ctx, book)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	found, err := books.GetOne(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Compilers", found.Title)
}
