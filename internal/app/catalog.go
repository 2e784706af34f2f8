package app

import (
	"slices"
	"strings"
	"time"

	"github.com/Amund211/gridline/internal/domain"
)

// SortPreset selects one of the fixed catalog orderings offered by the
// add-jobs view. Presets and the search filter affect only which jobs are
// displayed, never any selection state.
type SortPreset string

const (
	SortRecentlyPlayed SortPreset = "recentlyPlayed"
	SortMostPlayed     SortPreset = "mostPlayed"
	SortRecentlyAdded  SortPreset = "recentlyAdded"
)

// FilterJobs returns the jobs matching the query by case-insensitive
// substring on title, creator, game mode, route type or route length.
// An empty query matches everything.
func FilterJobs(jobs []domain.Job, query string) []domain.Job {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return slices.Clone(jobs)
	}

	matched := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if jobMatches(job, query) {
			matched = append(matched, job)
		}
	}
	return matched
}

func jobMatches(job domain.Job, loweredQuery string) bool {
	for _, field := range []string{job.Title, job.Creator, job.GameMode, job.RouteType, job.RouteLength} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}

// SortJobs returns a copy of the jobs ordered by the preset, descending.
// Unknown presets return the input order.
func SortJobs(jobs []domain.Job, preset SortPreset) []domain.Job {
	sorted := slices.Clone(jobs)

	switch preset {
	case SortRecentlyPlayed:
		slices.SortStableFunc(sorted, func(a, b domain.Job) int {
			return parseScrapeDate(b.LastPlayed).Compare(parseScrapeDate(a.LastPlayed))
		})
	case SortMostPlayed:
		slices.SortStableFunc(sorted, func(a, b domain.Job) int {
			return b.PlayCount - a.PlayCount
		})
	case SortRecentlyAdded:
		slices.SortStableFunc(sorted, func(a, b domain.Job) int {
			return parseScrapeDate(b.CreationDate).Compare(parseScrapeDate(a.CreationDate))
		})
	}

	return sorted
}

// Dates come off the page as display strings in a handful of formats.
// Anything unparseable sorts as the zero time, i.e. last in descending order.
var scrapeDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"01/02/2006",
	time.RFC3339,
}

func parseScrapeDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range scrapeDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
