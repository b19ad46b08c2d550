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

import (
	"fmt"

	"github.com/uptrace/bun"
)

// Book is a row of the book table.
type Book struct {
	bun.BaseModel `bun:"table:book,alias:bk"`

	ID    int64   `bun:"id,pk,autoincrement" json:"id"`
	Title string  `bun:"title,notnull" json:"title" validate:"required"`
	Info  string  `bun:"info" json:"info"`
	Price float64 `bun:"price,notnull" json:"price" validate:"gte=0"`
}

// NewBook returns an unsaved book; the id is assigned on insert.
func NewBook(title, info string, price float64) *Book {
	return &Book{Title: title, Info: info, Price: price}
}

func (b *Book) String() string {
	return fmt.Sprintf("Book(id=%d, title=%s, info=%s, price=%.2f)", b.ID, b.Title, b.Info, b.Price)
}
