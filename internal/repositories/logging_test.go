package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/prompt-gallery/internal/logger"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestQueryLogging_PairsFields(t *testing.T) {
	logs := observeLogs(t)

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM prompt_access_emails")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := NewEmailRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "count email access", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Contains(t, fields, "query")
	assert.EqualValues(t, 3, fields["result"])
	assert.Contains(t, fields, "error")
	assert.Zero(t, logs.FilterMessageSnippet("Ignored key").Len())
}
