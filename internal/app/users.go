package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/logging"
	"github.com/Amund211/gridline/internal/reporting"
)

type CreateOrGetUser func(ctx context.Context, username string) (domain.User, error)
type ListUsers func(ctx context.Context) ([]domain.User, error)
type DeleteUser func(ctx context.Context, username string) error

type userRepository interface {
	CreateOrGetUser(ctx context.Context, username string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, username string) error
}

func BuildCreateOrGetUser(repo userRepository) CreateOrGetUser {
	return func(ctx context.Context, username string) (domain.User, error) {
		username = strings.TrimSpace(username)
		if username == "" {
			err := domain.ErrEmptyUsername
			reporting.Report(ctx, err)
			return domain.User{}, err
		}

		return repo.CreateOrGetUser(ctx, username)
	}
}

func BuildListUsers(repo userRepository) ListUsers {
	return func(ctx context.Context) ([]domain.User, error) {
		return repo.ListUsers(ctx)
	}
}

// BuildDeleteUser deletes the user and cascades: the user's stat entries are
// scrubbed from every playlist. The cascade is not transactional; a failure
// partway leaves earlier playlists scrubbed, which a retry completes.
func BuildDeleteUser(
	userRepo userRepository,
	playlistRepo playlistRepository,
	nowFunc func() time.Time,
) DeleteUser {
	return func(ctx context.Context, username string) error {
		if err := userRepo.DeleteUser(ctx, username); err != nil {
			// NOTE: userRepository implementations handle their own error reporting
			return fmt.Errorf("failed to delete user: %w", err)
		}

		playlists, err := playlistRepo.ListPlaylists(ctx)
		if err != nil {
			return fmt.Errorf("failed to list playlists for stat cascade: %w", err)
		}

		logger := logging.FromContext(ctx)
		now := nowFunc()

		for _, playlist := range playlists {
			remaining := slices.DeleteFunc(slices.Clone(playlist.Stats), func(stat domain.PlayerStat) bool {
				return stat.Username == username
			})
			if len(remaining) == len(playlist.Stats) {
				continue
			}

			playlist.Stats = remaining
			playlist.UpdatedAt = now

			if err := playlistRepo.UpdatePlaylist(ctx, playlist); err != nil {
				return fmt.Errorf("failed to scrub stats from playlist %s: %w", playlist.ID, err)
			}
			logger.InfoContext(ctx, "Scrubbed stats for deleted user",
				"username", username,
				"playlistID", playlist.ID,
			)
		}

		return nil
	}
}
