package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Amund211/gridline/internal/domain"
)

type CreatePlaylist func(ctx context.Context, name string) (domain.Playlist, error)
type GetPlaylist func(ctx context.Context, id string) (domain.Playlist, error)
type ListPlaylists func(ctx context.Context) ([]domain.Playlist, error)
type DeletePlaylist func(ctx context.Context, id string) error

type AddJobsToPlaylist func(ctx context.Context, id string, jobs []domain.Job) (domain.Playlist, error)
type RemoveJobFromPlaylist func(ctx context.Context, id, url string) (domain.Playlist, error)
type ReorderPlaylist func(ctx context.Context, id string, fromIndex, toIndex int) (domain.Playlist, error)
type RenamePlaylist func(ctx context.Context, id, name string) (domain.Playlist, error)
type SetPlaylistPlayers func(ctx context.Context, id string, players []string) (domain.Playlist, error)
type SetPlaylistStats func(ctx context.Context, id string, stats []domain.PlayerStat) (domain.Playlist, error)
type SetPlaylistScores func(ctx context.Context, id string, scores map[string]int) (domain.Playlist, error)

type GetStandings func(ctx context.Context, id string) (domain.Standings, error)

type playlistRepository interface {
	CreatePlaylist(ctx context.Context, playlist domain.Playlist) error
	GetPlaylist(ctx context.Context, id string) (domain.Playlist, error)
	ListPlaylists(ctx context.Context) ([]domain.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlist domain.Playlist) error
	DeletePlaylist(ctx context.Context, id string) error
}

func BuildCreatePlaylist(
	repo playlistRepository,
	newID func() string,
	nowFunc func() time.Time,
) CreatePlaylist {
	return func(ctx context.Context, name string) (domain.Playlist, error) {
		playlist, err := domain.NewPlaylist(newID(), name, nowFunc())
		if err != nil {
			return domain.Playlist{}, err
		}

		if err := repo.CreatePlaylist(ctx, playlist); err != nil {
			// NOTE: playlistRepository implementations handle their own error reporting
			return domain.Playlist{}, fmt.Errorf("failed to create playlist: %w", err)
		}

		return playlist, nil
	}
}

func BuildGetPlaylist(repo playlistRepository) GetPlaylist {
	return func(ctx context.Context, id string) (domain.Playlist, error) {
		return repo.GetPlaylist(ctx, id)
	}
}

func BuildListPlaylists(repo playlistRepository) ListPlaylists {
	return func(ctx context.Context) ([]domain.Playlist, error) {
		return repo.ListPlaylists(ctx)
	}
}

func BuildDeletePlaylist(repo playlistRepository) DeletePlaylist {
	return func(ctx context.Context, id string) error {
		return repo.DeletePlaylist(ctx, id)
	}
}

// mutatePlaylist loads the playlist, applies mutate, and writes the whole
// document back. There is no concurrency control: concurrent writers to the
// same playlist race and the last write wins, which matches the intended
// handful-of-cooperating-users usage.
func mutatePlaylist(
	ctx context.Context,
	repo playlistRepository,
	id string,
	mutate func(playlist *domain.Playlist) error,
) (domain.Playlist, error) {
	playlist, err := repo.GetPlaylist(ctx, id)
	if err != nil {
		// NOTE: playlistRepository implementations handle their own error reporting
		return domain.Playlist{}, err
	}

	if err := mutate(&playlist); err != nil {
		return domain.Playlist{}, err
	}

	if err := repo.UpdatePlaylist(ctx, playlist); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to update playlist: %w", err)
	}

	return playlist, nil
}

func BuildAddJobsToPlaylist(repo playlistRepository, nowFunc func() time.Time) AddJobsToPlaylist {
	return func(ctx context.Context, id string, jobs []domain.Job) (domain.Playlist, error) {
		return mutatePlaylist(ctx, repo, id, func(playlist *domain.Playlist) error {
			playlist.AddJobs(jobs, nowFunc())
			return nil
		})
	}
}

func BuildRemoveJobFromPlaylist(repo playlistRepository, nowFunc func() time.Time) RemoveJobFromPlaylist {
	return func(ctx context.Context, id, url string) (domain.Playlist, error) {
		return mutatePlaylist(ctx, repo, id, func(playlist *domain.Playlist) error {
			return playlist.RemoveJob(url, nowFunc())
		})
	}
}

func BuildReorderPlaylist(repo playlistRepository, nowFunc func() time.Time) ReorderPlaylist {
	return func(ctx context.Context, id string, fromIndex, toIndex int) (domain.Playlist, error) {
		return mutatePlaylist(ctx, repo, id, func(playlist *domain.Playlist) error {
			return playlist.Reorder(fromIndex, toIndex, nowFunc())
		})
	}
}

func BuildRenamePlaylist(repo playlistRepository, nowFunc func() time.Time) RenamePlaylist {
	return func(ctx context.Context, id, name string) (domain.Playlist, error) {
		return mutatePlaylist(ctx, repo, id, func(playlist *domain.Playlist) error {
			return playlist.Rename(name, nowFunc())
		})
	}
}

func BuildSetPlaylistPlayers(repo playlistRepository, nowFunc func() time.Time) SetPlaylistPlayers {
	return func(ctx context.Context, id string, players []string) (domain.Playlist, error) {
		return mutatePlaylist(ctx, repo, id, func(playlist *domain.Playlist) error {
			playlist.SetPlayers(players, nowFunc())
			return nil
		})
	}
}

func BuildSetPlaylistStats(repo playlistRepository, nowFunc func() time.Time) SetPlaylistStats {
	return func(ctx context.Context, id string, stats []domain.PlayerStat) (domain.Playlist, error) {
		return mutatePlaylist(ctx, repo, id, func(playlist *domain.Playlist) error {
			playlist.SetStats(stats, nowFunc())
			return nil
		})
	}
}

func BuildSetPlaylistScores(repo playlistRepository, nowFunc func() time.Time) SetPlaylistScores {
	return func(ctx context.Context, id string, scores map[string]int) (domain.Playlist, error) {
		return mutatePlaylist(ctx, repo, id, func(playlist *domain.Playlist) error {
			playlist.SetScores(scores, nowFunc())
			return nil
		})
	}
}

func BuildGetStandings(repo playlistRepository) GetStandings {
	return func(ctx context.Context, id string) (domain.Standings, error) {
		playlist, err := repo.GetPlaylist(ctx, id)
		if err != nil {
			// NOTE: playlistRepository implementations handle their own error reporting
			return domain.Standings{}, err
		}

		return ComputeStandings(playlist), nil
	}
}
