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
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/librarian/database"
)

func TestDefaultLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetReportCaller(true)
	base.SetLevel(logrus.InfoLevel)

	logger := database.NewDefaultLogger(base)
	logger.Debug("Session opened", "in_use", 1)
	assert.Empty(t, hook.AllEntries())

	logger.SetLevel(database.LogLevelDebug)
	assert.Equal(t, logrus.DebugLevel, base.GetLevel())

	logger.Debug("Session opened", "in_use", 1)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Session opened", entry.Message)
	assert.Equal(t, logrus.Fields{"in_use": 1}, entry.Data)
	assert.Nil(t, entry.Caller)
}
