package postgres

import (
	"path"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	goose.SetBaseFS(migrations)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	collected, err := goose.CollectMigrations("migrations", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, collected, 1)
	assert.Equal(t, int64(1), collected[0].Version)
	assert.Equal(t, "00001_init.sql", path.Base(collected[0].Source))

	raw, err := migrations.ReadFile("migrations/00001_init.sql")
	require.NoError(t, err)
	sql := string(raw)

	up := strings.Index(sql, "-- +goose Up")
	down := strings.Index(sql, "-- +goose Down")
	require.GreaterOrEqual(t, up, 0)
	require.Greater(t, down, up)

	for _, column := range bookingRowColumns {
		assert.Contains(t, sql[up:down], "    "+column+" ", "bookings column %s", column)
	}
	assert.Contains(t, sql[up:down], "CREATE TABLE IF NOT EXISTS contacts")
	assert.Contains(t, sql[down:], "DROP TABLE IF EXISTS bookings")
	assert.Contains(t, sql[down:], "DROP TABLE IF EXISTS contacts")
}
