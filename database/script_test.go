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

package database_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/librarian/database"
	"github.com/tomoncle/librarian/internal/testdb"
)

func TestSplitStatements(t *testing.T) {
	script := `-- header
CREATE TABLE a (
    id INTEGER
);

INSERT INTO a (id) VALUES (1);
INSERT INTO a (id) VALUES (2)`

	statements, err := database.SplitStatements(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CREATE TABLE a ( id INTEGER )",
		"INSERT INTO a (id) VALUES (1)",
		"INSERT INTO a (id) VALUES (2)",
	}, statements)
}

func TestRunScript(t *testing.T) {
	ctx := context.Background()
	factory := testdb.NewFactory(t)

	result, err := database.RunScript(ctx, factory.DB(), strings.NewReader(
		"INSERT INTO book (title, info, price) VALUES ('A', '', 1);\nINSERT INTO book (title, info, price) VALUES ('B', '', 2);\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Statements)
	assert.EqualValues(t, 2, result.RowsAffected)

	_, err = database.RunScript(ctx, factory.DB(), strings.NewReader("INSERT INTO missing VALUES (1);"))
	require.Error(t, err)
	kind, ok := database.ClassifySQLError(err)
	assert.True(t, ok)
	assert.Equal(t, database.NoTableErr, kind)
}
