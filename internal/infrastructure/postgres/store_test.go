package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"

	"github.com/growplan/engine/internal/domain"
	"github.com/growplan/engine/internal/infrastructure/postgres"
	"github.com/growplan/engine/internal/storecompliance"
)

// TestPostgresStore_Compliance runs the shared Repository contract suite
// against a real PostgreSQL instance. It is skipped unless
// GROWPLAN_TEST_DB_DSN points at a reachable, disposable database, since
// it truncates every table between subtests.
func TestPostgresStore_Compliance(t *testing.T) {
	dsn := os.Getenv("GROWPLAN_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("GROWPLAN_TEST_DB_DSN not set, skipping PostgreSQL compliance tests")
	}

	ctx := context.Background()
	store, err := postgres.NewPostgresStore(ctx, dsn)
	require.NoError(t, err)
	defer store.Close()

	truncate := func() {
		db, err := sql.Open("pgx", dsn)
		require.NoError(t, err)
		defer db.Close()
		_, err = db.Exec(`TRUNCATE TABLE notifications, tasks, inventory_items, gardens CASCADE`)
		require.NoError(t, err)
		_, err = db.Exec(`UPDATE preferences SET enabled = TRUE, reminders_enabled = TRUE, overdue_enabled = TRUE,
			growth_enabled = TRUE, resource_enabled = TRUE, system_enabled = TRUE, sound_enabled = FALSE,
			reminder_lead_minutes = 60, quiet_hours_start = 22, quiet_hours_end = 7 WHERE id`)
		require.NoError(t, err)
	}

	storecompliance.Run(t, func() storecompliance.Store {
		truncate()
		store.SetPreferences(domain.UserPreferences{})
		return store
	})
}
