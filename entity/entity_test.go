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

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/librarian/entity"
	"github.com/tomoncle/librarian/types"
)

func TestParseSex(t *testing.T) {
	cases := map[string]entity.Sex{
		"M":      entity.SexMale,
		"f":      entity.SexFemale,
		" male ": entity.SexMale,
		"FEMALE": entity.SexFemale,
		"男":      entity.SexMale,
		"女":      entity.SexFemale,
	}
	for in, want := range cases {
		got, err := entity.ParseSex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := entity.ParseSex("x")
	assert.Error(t, err)
}

func TestSexEnum(t *testing.T) {
	assert.True(t, entity.SexMale.IsValid())
	assert.Equal(t, 1, entity.SexFemale.Number())
	assert.Equal(t, "female", entity.SexFemale.Desc())

	invalid := entity.Sex("X")
	assert.False(t, invalid.IsValid())
	assert.Equal(t, types.IllegalValue, invalid.Number())
	assert.Equal(t, types.IllegalName, invalid.Name())
}

func TestValidateStudent(t *testing.T) {
	assert.NoError(t, entity.Validate(entity.NewStudent("Alice", entity.SexFemale, 2021)))

	t.Run("empty name", func(t *testing.T) {
		assert.Error(t, entity.Validate(entity.NewStudent("", entity.SexFemale, 2021)))
	})
	t.Run("unknown sex", func(t *testing.T) {
		assert.Error(t, entity.Validate(entity.NewStudent("Bob", entity.Sex("?"), 2021)))
	})
	t.Run("implausible grade", func(t *testing.T) {
		assert.Error(t, entity.Validate(entity.NewStudent("Bob", entity.SexMale, 21)))
	})
}

func TestValidateBook(t *testing.T) {
	assert.NoError(t, entity.Validate(entity.NewBook("Algorithms", "", 0)))
	assert.Error(t, entity.Validate(entity.NewBook("", "intro text", 10)))
	assert.Error(t, entity.Validate(entity.NewBook("Algorithms", "intro text", -0.01)))
}

func TestBorrowResolved(t *testing.T) {
	b := &entity.Borrow{StudentID: 1, BookID: 1}
	assert.False(t, b.Resolved())
	b.Student = entity.NewStudent("Alice", entity.SexFemale, 2021)
	b.Book = entity.NewBook("Algorithms", "intro text", 49.99)
	assert.True(t, b.Resolved())
}
