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

// Student is a row of the student table.
type Student struct {
	bun.BaseModel `bun:"table:student,alias:s"`

	ID    int64  `bun:"id,pk,autoincrement" json:"id"`
	Name  string `bun:"name,notnull" json:"name" validate:"required"`
	Sex   Sex    `bun:"sex,notnull" json:"sex" validate:"required,sex"`
	Grade int    `bun:"grade,notnull" json:"grade" validate:"gte=1900,lte=2100"`
}

// NewStudent returns an unsaved student; the id is assigned on insert.
func NewStudent(name string, sex Sex, grade int) *Student {
	return &Student{Name: name, Sex: sex, Grade: grade}
}

func (s *Student) String() string {
	return fmt.Sprintf("Student(id=%d, name=%s, sex=%s, grade=%d)", s.ID, s.Name, s.Sex, s.Grade)
}
