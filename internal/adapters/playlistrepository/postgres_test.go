package playlistrepository

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amund211/gridline/internal/adapters/database"
	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/domaintest"
)

func newPostgres(t *testing.T, db *sqlx.DB, schemaSuffix string) *Postgres {
	require.NotEmpty(t, schemaSuffix, "schemaSuffix must not be empty")
	schema := fmt.Sprintf("playlist_repo_test_%s", schemaSuffix)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db.MustExec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", pq.QuoteIdentifier(schema)))

	migrator := database.NewDatabaseMigrator(db, logger)

	err := migrator.Migrate(t.Context(), schema)
	require.NoError(t, err)

	return NewPostgres(db, schema)
}

func newStoredPlaylist(name string, now time.Time) domain.Playlist {
	playlist := domaintest.NewPlaylistBuilder(uuid.New().String(), name).
		WithJobs(
			domaintest.NewJobBuilder("url-a").WithTitle("Opening Race").Build(),
			domaintest.NewJobBuilder("url-b").WithTitle("Closer").Build(),
		).
		WithPlayers("Al", "Bo").
		WithStats(
			domain.PlayerStat{Username: "Al", JobURL: "url-a", Placement: 1, LapTime: "1:02.345"},
			domain.PlayerStat{Username: "Bo", JobURL: "url-a", Placement: domain.PlacementDNF},
		).
		Build()
	playlist.Name = name
	playlist.Scores = map[string]int{"Al": 15, "Bo": 0}
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	return playlist
}

func TestPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping db tests in short mode.")
	}
	t.Parallel()

	db, err := database.NewPostgresDatabase(database.LOCAL_CONNECTION_STRING)
	require.NoError(t, err)

	now := time.Now().Truncate(time.Microsecond).UTC()

	t.Run("Create/GetPlaylist round trip", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()
		repo := newPostgres(t, db, "round_trip")

		playlist := newStoredPlaylist("Sunday Cup", now)
		require.NoError(t, repo.CreatePlaylist(ctx, playlist))

		got, err := repo.GetPlaylist(ctx, playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, playlist, got)
	})

	t.Run("GetPlaylist unknown id", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()
		repo := newPostgres(t, db, "unknown")

		_, err := repo.GetPlaylist(ctx, uuid.New().String())
		require.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})

	t.Run("UpdatePlaylist writes the whole document", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()
		repo := newPostgres(t, db, "update")

		playlist := newStoredPlaylist("Sunday Cup", now)
		require.NoError(t, repo.CreatePlaylist(ctx, playlist))

		playlist.Name = "Monday Cup"
		playlist.Jobs = playlist.Jobs[:1]
		playlist.UpdatedAt = now.Add(time.Minute)
		require.NoError(t, repo.UpdatePlaylist(ctx, playlist))

		got, err := repo.GetPlaylist(ctx, playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, playlist, got)
	})

	t.Run("UpdatePlaylist unknown id", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()
		repo := newPostgres(t, db, "update_unknown")

		playlist := newStoredPlaylist("Sunday Cup", now)
		require.ErrorIs(t, repo.UpdatePlaylist(ctx, playlist), domain.ErrPlaylistNotFound)
	})

	t.Run("ListPlaylists orders by creation time", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()
		repo := newPostgres(t, db, "list")

		first := newStoredPlaylist("First", now)
		second := newStoredPlaylist("Second", now.Add(time.Minute))

		require.NoError(t, repo.CreatePlaylist(ctx, second))
		require.NoError(t, repo.CreatePlaylist(ctx, first))

		playlists, err := repo.ListPlaylists(ctx)
		require.NoError(t, err)
		require.Len(t, playlists, 2)
		assert.Equal(t, "First", playlists[0].Name)
		assert.Equal(t, "Second", playlists[1].Name)
	})

	t.Run("DeletePlaylist", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()
		repo := newPostgres(t, db, "delete")

		playlist := newStoredPlaylist("Sunday Cup", now)
		require.NoError(t, repo.CreatePlaylist(ctx, playlist))

		require.NoError(t, repo.DeletePlaylist(ctx, playlist.ID))

		_, err := repo.GetPlaylist(ctx, playlist.ID)
		require.ErrorIs(t, err, domain.ErrPlaylistNotFound)

		require.ErrorIs(t, repo.DeletePlaylist(ctx, playlist.ID), domain.ErrPlaylistNotFound)
	})
}
