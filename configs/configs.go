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

// Package configs ships the default configuration and SQL scripts.
package configs

import (
	"embed"
	"io"
)

//go:embed librarian.yaml sql/*.sql
var files embed.FS

// Schema returns the SQLite DDL of the student, book and borrow tables.
func Schema() (io.ReadCloser, error) {
	return files.Open("sql/schema.sql")
}

// DefaultConfig returns the bundled librarian.yaml.
func DefaultConfig() ([]byte, error) {
	return files.ReadFile("librarian.yaml")
}
