package domaintest

import (
	"time"

	"github.com/Amund211/gridline/internal/domain"
)

type PlaylistBuilder struct {
	playlist domain.Playlist
}

func NewPlaylistBuilder(id, name string) *PlaylistBuilder {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &PlaylistBuilder{
		playlist: domain.Playlist{
			ID:        id,
			Name:      name,
			Jobs:      []domain.Job{},
			Stats:     []domain.PlayerStat{},
			Players:   []string{},
			Scores:    map[string]int{},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (b *PlaylistBuilder) WithJobs(jobs ...domain.Job) *PlaylistBuilder {
	b.playlist.Jobs = append(b.playlist.Jobs, jobs...)
	return b
}

func (b *PlaylistBuilder) WithPlayers(players ...string) *PlaylistBuilder {
	b.playlist.Players = append(b.playlist.Players, players...)
	return b
}

func (b *PlaylistBuilder) WithStats(stats ...domain.PlayerStat) *PlaylistBuilder {
	b.playlist.Stats = append(b.playlist.Stats, stats...)
	return b
}

func (b *PlaylistBuilder) Build() domain.Playlist {
	return b.playlist
}
