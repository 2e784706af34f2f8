package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/Amund211/gridline/internal/domain"
)

// RemoveFromPlaylist removes a job from the live playlist by URL.
type RemoveFromPlaylist func(ctx context.Context, url string) error

// AddToPlaylist appends the given jobs to the live playlist in input order.
type AddToPlaylist func(ctx context.Context, jobs []domain.Job) error

// Selection tracks which catalog jobs are pending addition to a playlist for
// the duration of one add-jobs interaction. It is scoped to that interaction:
// create one per session, never share it between playlists.
//
// A job already in the playlist can never enter the pending set. Toggling it
// routes to live removal instead, so the two membership states stay mutually
// exclusive.
type Selection struct {
	playlist           *domain.Playlist
	removeFromPlaylist RemoveFromPlaylist

	pending []domain.Job
}

func NewSelection(playlist *domain.Playlist, removeFromPlaylist RemoveFromPlaylist) *Selection {
	return &Selection{
		playlist:           playlist,
		removeFromPlaylist: removeFromPlaylist,
		pending:            []domain.Job{},
	}
}

// Toggle flips the job's state. For a playlist member it delegates to live
// removal and reports removed=true; otherwise it inserts the job into the
// pending set, or deletes it if it was already pending.
func (s *Selection) Toggle(ctx context.Context, job domain.Job) (removed bool, err error) {
	if s.playlist.ContainsJob(job.URL) {
		if err := s.removeFromPlaylist(ctx, job.URL); err != nil {
			return false, fmt.Errorf("failed to remove job from playlist: %w", err)
		}
		return true, nil
	}

	index := slices.IndexFunc(s.pending, func(pending domain.Job) bool {
		return pending.URL == job.URL
	})
	if index != -1 {
		s.pending = slices.Delete(s.pending, index, index+1)
		return false, nil
	}

	s.pending = append(s.pending, job)
	return false, nil
}

// Rank returns the 1-based position of the URL in the pending set in
// insertion order. Ranks are dense: removing an entry shifts every later
// rank down, so they always run 1..Size() with no gaps.
func (s *Selection) Rank(url string) (int, bool) {
	index := slices.IndexFunc(s.pending, func(pending domain.Job) bool {
		return pending.URL == url
	})
	if index == -1 {
		return 0, false
	}
	return index + 1, true
}

// Selected returns the pending jobs in insertion order.
func (s *Selection) Selected() []domain.Job {
	return slices.Clone(s.pending)
}

func (s *Selection) Size() int {
	return len(s.pending)
}

// Commit adds the pending jobs to the playlist in insertion order, then
// clears the pending set. An empty selection commits to nothing.
func (s *Selection) Commit(ctx context.Context, addToPlaylist AddToPlaylist) error {
	if len(s.pending) == 0 {
		return nil
	}

	if err := addToPlaylist(ctx, s.pending); err != nil {
		return fmt.Errorf("failed to add selected jobs to playlist: %w", err)
	}

	s.Clear()
	return nil
}

// Clear empties the pending set without committing (cancel/close).
func (s *Selection) Clear() {
	s.pending = []domain.Job{}
}
