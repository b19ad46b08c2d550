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

package database

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// ScriptResult describes one executed SQL script.
type ScriptResult struct {
	Statements   int
	RowsAffected int64
	Duration     time.Duration
}

// RunScript executes the statements of a SQL script one by one. Every
// statement auto-commits; execution stops at the first failure.
func RunScript(ctx context.Context, db bun.IDB, script io.Reader) (ScriptResult, error) {
	start := time.Now()
	var result ScriptResult

	statements, err := SplitStatements(script)
	if err != nil {
		return result, fmt.Errorf("failed to read SQL script: %w", err)
	}
	for _, stmt := range statements {
		res, err := db.ExecContext(ctx, stmt)
		if err != nil {
			return result, fmt.Errorf("failed to execute SQL statement: %s, error: %w", stmt, err)
		}
		n, _ := res.RowsAffected()
		result.RowsAffected += n
		result.Statements++
	}

	result.Duration = time.Since(start)
	GetLogger().Debug("SQL script executed", "statements", result.Statements, "duration", result.Duration)
	return result, nil
}

// SplitStatements splits a script on trailing semicolons. Blank lines and
// "--" comment lines are dropped.
func SplitStatements(r io.Reader) ([]string, error) {
	var statements []string
	var current strings.Builder

	flush := func() {
		stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
		if stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString(" ")
		if strings.HasSuffix(line, ";") {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return statements, nil
}
