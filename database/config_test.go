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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/librarian/database"
)

const sampleConfig = `
connection:
  type: mysql
  host: 127.0.0.1
  port: 3306
  username: root
  password: secret
  dbname: library
  max_open_conns: 8
  conn_max_lifetime: 30m
  slow_query_time: 250ms
log:
  level: debug
`

func TestParseConfig(t *testing.T) {
	cfg, err := database.ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	conn := cfg.Connection
	assert.Equal(t, database.TypeMySQL, conn.Type)
	assert.Equal(t, "127.0.0.1", conn.Host)
	assert.Equal(t, 3306, conn.Port)
	assert.Equal(t, "library", conn.DBName)
	assert.Equal(t, 8, conn.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, conn.ConnMaxLifetime)
	assert.Equal(t, 250*time.Millisecond, conn.SlowQueryTime)
	assert.Equal(t, "debug", cfg.Log.Level)

	// untouched keys keep their defaults
	defaults := database.DefaultConnectionConfig()
	assert.Equal(t, defaults.MaxIdleConns, conn.MaxIdleConns)
	assert.Equal(t, defaults.ConnectTimeout, conn.ConnectTimeout)
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("DB_SLOW_QUERY_TIME", "1s")

	cfg, err := database.ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Connection.Host)
	assert.Equal(t, 3307, cfg.Connection.Port)
	assert.Equal(t, "from-env", cfg.Connection.Password)
	assert.Equal(t, time.Second, cfg.Connection.SlowQueryTime)
}

func TestParseConfigLogEnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CONSOLE_LOG_FORMAT", "json")

	cfg, err := database.ParseConfig([]byte("connection:\n  type: sqlite\n  dbname: librarian\nlog:\n  level: info\n  format: text\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	t.Setenv("LOG_LEVEL", "loud")
	_, err = database.ParseConfig([]byte("connection:\n  type: sqlite\n  dbname: librarian\n"))
	assert.ErrorIs(t, err, database.ErrInvalidConfig)
}

func TestParseConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"malformed":        "connection: [",
		"unknown type":     "connection:\n  type: oracle\n  dbname: x\n",
		"missing dbname":   "connection:\n  type: sqlite\n",
		"missing host":     "connection:\n  type: postgres\n  port: 5432\n  dbname: x\n",
		"negative pool":    "connection:\n  type: sqlite\n  dbname: x\n  max_open_conns: -1\n",
		"unknown loglevel": "connection:\n  type: sqlite\n  dbname: x\nlog:\n  level: loud\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := database.ParseConfig([]byte(content))
			assert.ErrorIs(t, err, database.ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "librarian.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connection:\n  type: sqlite\n  dbname: library\n"), 0o644))

	cfg, err := database.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, database.TypeSQLite, cfg.Connection.Type)

	_, err = database.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, database.ErrInvalidConfig)
}

func TestValidateNilConfig(t *testing.T) {
	var cfg *database.Config
	assert.ErrorIs(t, cfg.Validate(), database.ErrInvalidConfig)
}
