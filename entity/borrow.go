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

package entity

import "github.com/uptrace/bun"

// Borrow links a student to a book through the sid and bid foreign keys.
// Student and Book are not stored; they are filled when borrows are listed.
type Borrow struct {
	bun.BaseModel `bun:"table:borrow,alias:br"`

	ID        int64 `bun:"id,pk,autoincrement" json:"id"`
	StudentID int64 `bun:"sid,notnull" json:"sid"`
	BookID    int64 `bun:"bid,notnull" json:"bid"`

	Student *Student `bun:"-" json:"student,omitempty"`
	Book    *Book    `bun:"-" json:"book,omitempty"`
}

// Resolved reports whether both references have been populated.
func (b *Borrow) Resolved() bool {
	return b.Student != nil && b.Book != nil
}
