package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// PlayerStat is one player's result for one race in a playlist. There is at
// most one entry per (Username, JobURL) pair; re-submitting replaces it.
type PlayerStat struct {
	Username  string
	JobURL    string
	Placement Placement
	LapTime   string
}

// Playlist is a named, ordered collection of jobs with a player roster and
// race results. Jobs are embedded copies of catalog records, not references;
// their order is significant and doubles as the race index. Membership is
// keyed by job URL and duplicates are forbidden.
//
// Playlists are single-writer documents: mutations stamp UpdatedAt and the
// last write wins. There is no concurrency control here, which is acceptable
// for the handful of cooperating users this is built for.
type Playlist struct {
	ID      string
	Name    string
	Jobs    []Job
	Stats   []PlayerStat
	Players []string
	Scores  map[string]int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPlaylist(id, name string, now time.Time) (Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Playlist{}, ErrEmptyPlaylistName
	}

	return Playlist{
		ID:        id,
		Name:      name,
		Jobs:      []Job{},
		Stats:     []PlayerStat{},
		Players:   []string{},
		Scores:    map[string]int{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (p *Playlist) ContainsJob(url string) bool {
	return slices.ContainsFunc(p.Jobs, func(job Job) bool {
		return job.URL == url
	})
}

// AddJobs appends copies of the given jobs in input order, skipping any job
// whose URL is already present. Jobs without a URL are skipped as well.
// Returns the number of jobs actually appended.
func (p *Playlist) AddJobs(jobs []Job, now time.Time) int {
	added := 0
	for _, job := range jobs {
		job = NormalizeJob(job)
		if job.URL == "" {
			continue
		}
		if p.ContainsJob(job.URL) {
			continue
		}
		p.Jobs = append(p.Jobs, job)
		added++
	}

	p.UpdatedAt = now
	return added
}

func (p *Playlist) RemoveJob(url string, now time.Time) error {
	index := slices.IndexFunc(p.Jobs, func(job Job) bool {
		return job.URL == url
	})
	if index == -1 {
		return fmt.Errorf("%w: %s", ErrJobNotInPlaylist, url)
	}

	p.Jobs = slices.Delete(p.Jobs, index, index+1)
	p.UpdatedAt = now
	return nil
}

// Reorder removes the job at fromIndex and reinserts it at toIndex in the
// resulting list (splice-move, not swap). toIndex == len(jobs) is accepted
// and appends at the end.
func (p *Playlist) Reorder(fromIndex, toIndex int, now time.Time) error {
	if fromIndex < 0 || fromIndex >= len(p.Jobs) {
		return fmt.Errorf("%w: fromIndex %d", ErrIndexOutOfRange, fromIndex)
	}
	if toIndex < 0 || toIndex > len(p.Jobs) {
		return fmt.Errorf("%w: toIndex %d", ErrIndexOutOfRange, toIndex)
	}

	job := p.Jobs[fromIndex]
	jobs := slices.Delete(p.Jobs, fromIndex, fromIndex+1)
	if toIndex > len(jobs) {
		toIndex = len(jobs)
	}
	p.Jobs = slices.Insert(jobs, toIndex, job)
	p.UpdatedAt = now
	return nil
}

func (p *Playlist) Rename(name string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPlaylistName
	}

	p.Name = name
	p.UpdatedAt = now
	return nil
}

// SetPlayers replaces the tracked player roster wholesale. An empty roster is
// tolerated here for programmatic use; the manage-players endpoint rejects
// empty submissions before calling this.
func (p *Playlist) SetPlayers(players []string, now time.Time) {
	p.Players = slices.Clone(players)
	p.UpdatedAt = now
}

// SetStats upserts each stat by its (username, jobURL) pair. Existing entries
// for the same pair are replaced in place; new pairs are appended.
func (p *Playlist) SetStats(stats []PlayerStat, now time.Time) {
	for _, stat := range stats {
		index := slices.IndexFunc(p.Stats, func(existing PlayerStat) bool {
			return existing.Username == stat.Username && existing.JobURL == stat.JobURL
		})
		if index == -1 {
			p.Stats = append(p.Stats, stat)
		} else {
			p.Stats[index] = stat
		}
	}

	p.UpdatedAt = now
}

// SetScores replaces the free-form scores document. The field is passed
// through for clients; the standings computation does not read it.
func (p *Playlist) SetScores(scores map[string]int, now time.Time) {
	p.Scores = make(map[string]int, len(scores))
	for key, value := range scores {
		p.Scores[key] = value
	}
	p.UpdatedAt = now
}
