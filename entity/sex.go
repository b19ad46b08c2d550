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

	"github.com/tomoncle/librarian/types"
)

// Sex is the enumerated sex of a student as stored in the student table.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

var _ types.BaseEnum = SexMale

// Sexes lists every valid Sex value.
var Sexes = []Sex{SexMale, SexFemale}

var sexAliases = map[string]Sex{
	"男": SexMale,
	"女": SexFemale,
}

// ParseSex accepts the stored form (M/F), the name, the description or a
// known alias.
func ParseSex(s string) (Sex, error) {
	if sex, ok := types.LookupEnum(Sexes, s); ok {
		return sex, nil
	}
	if sex, ok := sexAliases[s]; ok {
		return sex, nil
	}
	return "", fmt.Errorf("unknown sex %q, expected one of %v", s, Sexes)
}

func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

func (s Sex) Number() int {
	switch s {
	case SexMale:
		return 0
	case SexFemale:
		return 1
	default:
		return types.IllegalValue
	}
}

func (s Sex) String() string {
	return string(s)
}

func (s Sex) Name() string {
	switch s {
	case SexMale:
		return "MALE"
	case SexFemale:
		return "FEMALE"
	default:
		return types.IllegalName
	}
}

func (s Sex) Desc() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return types.IllegalDesc
	}
}
