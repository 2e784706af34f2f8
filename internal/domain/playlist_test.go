package domain_test

import (
	"testing"
	"time"

	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/domaintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobURLs(playlist domain.Playlist) []string {
	urls := make([]string, 0, len(playlist.Jobs))
	for _, job := range playlist.Jobs {
		urls = append(urls, job.URL)
	}
	return urls
}

func TestNewPlaylist(t *testing.T) {
	t.Parallel()

	now := time.Now()

	playlist, err := domain.NewPlaylist("id-1", "  Tuesday Grind  ", now)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday Grind", playlist.Name)
	assert.Equal(t, now, playlist.CreatedAt)
	assert.Equal(t, now, playlist.UpdatedAt)
	assert.Empty(t, playlist.Jobs)

	_, err = domain.NewPlaylist("id-2", "   ", now)
	require.ErrorIs(t, err, domain.ErrEmptyPlaylistName)
}

func TestPlaylistAddJobs(t *testing.T) {
	t.Parallel()

	jobA := domaintest.NewJobBuilder("url-a").Build()
	jobB := domaintest.NewJobBuilder("url-b").Build()

	t.Run("duplicates within one batch are skipped", func(t *testing.T) {
		t.Parallel()

		playlist := domaintest.NewPlaylistBuilder("id-1", "list").Build()
		now := time.Now()

		added := playlist.AddJobs([]domain.Job{jobA, jobB, jobA}, now)
		assert.Equal(t, 2, added)
		assert.Equal(t, []string{"url-a", "url-b"}, jobURLs(playlist))
		assert.Equal(t, now, playlist.UpdatedAt)
	})

	t.Run("re-adding an existing job is a no-op", func(t *testing.T) {
		t.Parallel()

		playlist := domaintest.NewPlaylistBuilder("id-1", "list").WithJobs(jobA).Build()

		added := playlist.AddJobs([]domain.Job{jobA, jobB}, time.Now())
		assert.Equal(t, 1, added)
		assert.Equal(t, []string{"url-a", "url-b"}, jobURLs(playlist))
	})

	t.Run("jobs without a url are skipped", func(t *testing.T) {
		t.Parallel()

		playlist := domaintest.NewPlaylistBuilder("id-1", "list").Build()

		added := playlist.AddJobs([]domain.Job{{Title: "no url"}, jobA}, time.Now())
		assert.Equal(t, 1, added)
		assert.Equal(t, []string{"url-a"}, jobURLs(playlist))
	})

	t.Run("surviving jobs keep input order", func(t *testing.T) {
		t.Parallel()

		jobC := domaintest.NewJobBuilder("url-c").Build()
		playlist := domaintest.NewPlaylistBuilder("id-1", "list").WithJobs(jobB).Build()

		playlist.AddJobs([]domain.Job{jobC, jobB, jobA}, time.Now())
		assert.Equal(t, []string{"url-b", "url-c", "url-a"}, jobURLs(playlist))
	})
}

func TestPlaylistRemoveJob(t *testing.T) {
	t.Parallel()

	jobA := domaintest.NewJobBuilder("url-a").Build()
	jobB := domaintest.NewJobBuilder("url-b").Build()

	t.Run("removes the matching entry", func(t *testing.T) {
		t.Parallel()

		playlist := domaintest.NewPlaylistBuilder("id-1", "list").WithJobs(jobA, jobB).Build()

		require.NoError(t, playlist.RemoveJob("url-a", time.Now()))
		assert.Equal(t, []string{"url-b"}, jobURLs(playlist))
	})

	t.Run("missing url fails with not found", func(t *testing.T) {
		t.Parallel()

		playlist := domaintest.NewPlaylistBuilder("id-1", "list").WithJobs(jobA).Build()

		err := playlist.RemoveJob("url-not-present", time.Now())
		require.ErrorIs(t, err, domain.ErrJobNotInPlaylist)
		assert.Equal(t, []string{"url-a"}, jobURLs(playlist))
	})
}

func TestPlaylistReorder(t *testing.T) {
	t.Parallel()

	makePlaylist := func() domain.Playlist {
		return domaintest.NewPlaylistBuilder("id-1", "list").WithJobs(
			domaintest.NewJobBuilder("url-a").Build(),
			domaintest.NewJobBuilder("url-b").Build(),
			domaintest.NewJobBuilder("url-c").Build(),
		).Build()
	}

	tests := []struct {
		name      string
		fromIndex int
		toIndex   int
		expected  []string
		errors    bool
	}{
		{name: "move first to last", fromIndex: 0, toIndex: 2, expected: []string{"url-b", "url-c", "url-a"}},
		{name: "move last to first", fromIndex: 2, toIndex: 0, expected: []string{"url-c", "url-a", "url-b"}},
		{name: "same index is a no-op", fromIndex: 0, toIndex: 0, expected: []string{"url-a", "url-b", "url-c"}},
		{name: "toIndex may equal length", fromIndex: 0, toIndex: 3, expected: []string{"url-b", "url-c", "url-a"}},
		{name: "negative fromIndex", fromIndex: -1, toIndex: 0, errors: true},
		{name: "fromIndex out of bounds", fromIndex: 3, toIndex: 0, errors: true},
		{name: "toIndex out of bounds", fromIndex: 0, toIndex: 4, errors: true},
		{name: "negative toIndex", fromIndex: 0, toIndex: -1, errors: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			playlist := makePlaylist()
			err := playlist.Reorder(tt.fromIndex, tt.toIndex, time.Now())
			if tt.errors {
				require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
				assert.Equal(t, []string{"url-a", "url-b", "url-c"}, jobURLs(playlist))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, jobURLs(playlist))
			assert.Len(t, playlist.Jobs, 3)
		})
	}
}

func TestPlaylistRename(t *testing.T) {
	t.Parallel()

	playlist := domaintest.NewPlaylistBuilder("id-1", "old name").Build()

	require.ErrorIs(t, playlist.Rename("   ", time.Now()), domain.ErrEmptyPlaylistName)
	assert.Equal(t, "old name", playlist.Name)

	require.NoError(t, playlist.Rename("  new name ", time.Now()))
	assert.Equal(t, "new name", playlist.Name)
}

func TestPlaylistSetStats(t *testing.T) {
	t.Parallel()

	playlist := domaintest.NewPlaylistBuilder("id-1", "list").Build()
	now := time.Now()

	playlist.SetStats([]domain.PlayerStat{
		{Username: "Al", JobURL: "url-a", Placement: 1},
		{Username: "Bo", JobURL: "url-a", Placement: 2},
	}, now)
	require.Len(t, playlist.Stats, 2)

	// Re-submitting for the same (username, jobURL) pair replaces, never duplicates
	playlist.SetStats([]domain.PlayerStat{
		{Username: "Al", JobURL: "url-a", Placement: 3},
	}, now)
	require.Len(t, playlist.Stats, 2)
	assert.Equal(t, domain.Placement(3), playlist.Stats[0].Placement)
	assert.Equal(t, "Al", playlist.Stats[0].Username)
}

func TestPlaylistSetPlayers(t *testing.T) {
	t.Parallel()

	playlist := domaintest.NewPlaylistBuilder("id-1", "list").WithPlayers("Al").Build()

	playlist.SetPlayers([]string{"Bo", "Cy"}, time.Now())
	assert.Equal(t, []string{"Bo", "Cy"}, playlist.Players)

	// Wholesale replacement tolerates an empty roster for programmatic use
	playlist.SetPlayers(nil, time.Now())
	assert.Empty(t, playlist.Players)
}
