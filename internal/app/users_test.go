package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/Amund211/gridline/internal/app"
	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/domaintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	t *testing.T

	createOrGetUserUsername string
	createOrGetUserUser     domain.User
	createOrGetUserErr      error

	listUsersUsers []domain.User
	listUsersErr   error

	deleteUserCalled   bool
	deleteUserUsername string
	deleteUserErr      error
}

func (m *mockUserRepository) CreateOrGetUser(ctx context.Context, username string) (domain.User, error) {
	m.t.Helper()
	require.Equal(m.t, m.createOrGetUserUsername, username)
	return m.createOrGetUserUser, m.createOrGetUserErr
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	m.t.Helper()
	return m.listUsersUsers, m.listUsersErr
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, username string) error {
	m.t.Helper()
	require.False(m.t, m.deleteUserCalled)
	m.deleteUserCalled = true
	m.deleteUserUsername = username
	return m.deleteUserErr
}

func TestCreateOrGetUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("trims the username", func(t *testing.T) {
		t.Parallel()

		repo := &mockUserRepository{
			t:                       t,
			createOrGetUserUsername: "Al",
			createOrGetUserUser:     domain.User{ID: "user-1", Username: "Al"},
		}
		createOrGetUser := app.BuildCreateOrGetUser(repo)

		user, err := createOrGetUser(ctx, "  Al  ")
		require.NoError(t, err)
		assert.Equal(t, "Al", user.Username)
	})

	t.Run("blank username fails without touching the repository", func(t *testing.T) {
		t.Parallel()

		repo := &mockUserRepository{t: t, createOrGetUserUsername: "unreachable"}
		createOrGetUser := app.BuildCreateOrGetUser(repo)

		_, err := createOrGetUser(ctx, "   ")
		require.ErrorIs(t, err, domain.ErrEmptyUsername)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	nowFunc := func() time.Time { return now }

	t.Run("scrubs stats from playlists that reference the user", func(t *testing.T) {
		t.Parallel()

		withStats := domaintest.NewPlaylistBuilder("playlist-1", "list").
			WithStats(
				domain.PlayerStat{Username: "Al", JobURL: "url-a", Placement: 1},
				domain.PlayerStat{Username: "Bo", JobURL: "url-a", Placement: 2},
			).
			Build()
		untouched := domaintest.NewPlaylistBuilder("playlist-2", "list").
			WithStats(domain.PlayerStat{Username: "Bo", JobURL: "url-b", Placement: 1}).
			Build()

		userRepo := &mockUserRepository{t: t}
		playlistRepo := &mockPlaylistRepository{
			t:                      t,
			listPlaylistsPlaylists: []domain.Playlist{withStats, untouched},
		}
		deleteUser := app.BuildDeleteUser(userRepo, playlistRepo, nowFunc)

		require.NoError(t, deleteUser(ctx, "Al"))

		assert.Equal(t, "Al", userRepo.deleteUserUsername)
		require.True(t, playlistRepo.updatePlaylistCalled)
		scrubbed := playlistRepo.updatePlaylistPlaylist
		assert.Equal(t, "playlist-1", scrubbed.ID)
		require.Len(t, scrubbed.Stats, 1)
		assert.Equal(t, "Bo", scrubbed.Stats[0].Username)
		assert.Equal(t, now, scrubbed.UpdatedAt)
	})

	t.Run("user without stats touches no playlists", func(t *testing.T) {
		t.Parallel()

		userRepo := &mockUserRepository{t: t}
		playlistRepo := &mockPlaylistRepository{
			t:                      t,
			listPlaylistsPlaylists: []domain.Playlist{domaintest.NewPlaylistBuilder("playlist-1", "list").Build()},
		}
		deleteUser := app.BuildDeleteUser(userRepo, playlistRepo, nowFunc)

		require.NoError(t, deleteUser(ctx, "Al"))
		assert.False(t, playlistRepo.updatePlaylistCalled)
	})

	t.Run("missing user propagates NotFound", func(t *testing.T) {
		t.Parallel()

		userRepo := &mockUserRepository{t: t, deleteUserErr: domain.ErrUserNotFound}
		playlistRepo := &mockPlaylistRepository{t: t}
		deleteUser := app.BuildDeleteUser(userRepo, playlistRepo, nowFunc)

		require.ErrorIs(t, deleteUser(ctx, "Al"), domain.ErrUserNotFound)
		assert.False(t, playlistRepo.updatePlaylistCalled)
	})
}
