// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/migrations"
	"github.com/MKhiriev/fastm8/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryDB(dialect migrations.Dialect) *DB {
	return newDB(nil, dialect, 0, logger.Nop())
}

func Test_buildListSessionsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := queryDB(migrations.DialectPostgres).buildListSessionsQuery(models.SessionFilter{UserID: 42})
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from fast_logs")
	require.Contains(t, q, "where user_id = $1")
	require.Contains(t, q, "order by start_time desc")
	require.NotContains(t, q, "is_complete =")

	for _, c := range sessionColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildListSessionsQuery(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		dialect    migrations.Dialect
		filter     models.SessionFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:    "open only",
			dialect: migrations.DialectPostgres,
			filter:  models.SessionFilter{UserID: 1, OnlyOpen: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "is_complete = $2")
				require.Len(t, args, 2)
				assert.Equal(t, false, args[1])
			},
		},
		{
			name:    "inclusive bounds",
			dialect: migrations.DialectPostgres,
			filter:  models.SessionFilter{UserID: 1, From: &from, To: &to},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "start_time >= $2")
				assert.Contains(t, query, "start_time <= $3")
				require.Len(t, args, 3)
				assert.Equal(t, from, args[1])
				assert.Equal(t, to, args[2])
			},
		},
		{
			name:    "exclusive upper bound",
			dialect: migrations.DialectPostgres,
			filter:  models.SessionFilter{UserID: 1, To: &to, ToExclusive: true},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "start_time < $2")
				assert.NotContains(t, query, "<=")
			},
		},
		{
			name:    "sqlite placeholders",
			dialect: migrations.DialectSQLite,
			filter:  models.SessionFilter{UserID: 1, From: &from},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "user_id = ?")
				assert.Contains(t, query, "start_time >= ?")
				assert.NotContains(t, query, "$1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := queryDB(tt.dialect).buildListSessionsQuery(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_newDB_PlaceholderPerDialect(t *testing.T) {
	pgQuery, _, err := queryDB(migrations.DialectPostgres).buildDeleteOpenSessionsQuery(3)
	require.NoError(t, err)
	assert.Contains(t, pgQuery, "$1")
	assert.NotContains(t, pgQuery, "?")

	liteQuery, _, err := queryDB(migrations.DialectSQLite).buildDeleteOpenSessionsQuery(3)
	require.NoError(t, err)
	assert.Contains(t, liteQuery, "?")
	assert.NotContains(t, liteQuery, "$1")
}

func Test_buildSelectOwnedSessionQuery_LocksOnPostgres(t *testing.T) {
	query, args, err := queryDB(migrations.DialectPostgres).buildSelectOwnedSessionQuery(5, 1)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE id = $1 AND user_id = $2")
	assert.Contains(t, query, "FOR UPDATE")
	assert.Equal(t, []any{int64(5), int64(1)}, args)

	query, _, err = queryDB(migrations.DialectSQLite).buildSelectOwnedSessionQuery(5, 1)
	require.NoError(t, err)
	assert.NotContains(t, query, "FOR UPDATE")
}

func Test_buildUpdateSessionQuery_SQLContainsParts(t *testing.T) {
	start := models.MustParseTimestamp("2024-01-01T00:00:00.000Z")
	current := models.FastingSession{ID: 9, UserID: 3, StartTime: start}

	tests := []struct {
		name        string
		patch       models.SessionPatch
		contains    []string
		notContains []string
	}{
		{
			name:        "only start time",
			patch:       models.SessionPatch{StartTime: models.Some(models.MustParseTimestamp("2024-01-01T01:00:00.000Z"))},
			contains:    []string{"SET start_time = $1", "WHERE id = $2 AND user_id = $3"},
			notContains: []string{"end_time", "duration", "is_complete"},
		},
		{
			name: "close derives duration",
			patch: models.SessionPatch{
				EndTime:    models.Some(models.MustParseTimestamp("2024-01-01T16:00:00.000Z").Ptr()),
				IsComplete: models.Some(true),
			},
			contains:    []string{"end_time = $1", "duration = $2", "is_complete = $3", "WHERE id = $4 AND user_id = $5"},
			notContains: []string{"start_time"},
		},
		{
			name:     "explicit null duration",
			patch:    models.SessionPatch{Duration: models.Some[*int64](nil)},
			contains: []string{"SET duration = $1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := current.Apply(tt.patch)
			query, _, err := queryDB(migrations.DialectPostgres).buildUpdateSessionQuery(current, merged, tt.patch)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "UPDATE fast_logs"))
			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.notContains {
				assert.NotContains(t, query, part)
			}
		})
	}
}

func Test_buildDeleteOpenSessionsQuery(t *testing.T) {
	query, args, err := queryDB(migrations.DialectPostgres).buildDeleteOpenSessionsQuery(4)
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM fast_logs")
	assert.Contains(t, query, "WHERE user_id = $1 AND is_complete = $2")
	assert.Equal(t, []any{int64(4), false}, args)
}

func Test_buildCreateQueries_ReturnID(t *testing.T) {
	db := queryDB(migrations.DialectPostgres)

	query, args, err := db.buildCreateUserQuery(models.User{Username: "u", Email: "e", PasswordHash: "h"}, time.Now())
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO users")
	assert.True(t, strings.HasSuffix(query, "RETURNING id"))
	assert.Len(t, args, 4)

	query, args, err = db.buildCreateSessionQuery(models.FastingSession{UserID: 1})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO fast_logs")
	assert.True(t, strings.HasSuffix(query, "RETURNING id"))
	assert.Len(t, args, 6)
}
