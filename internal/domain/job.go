package domain

import (
	"strings"
	"time"
)

// Job is a single scraped race record. The source URL is the identity:
// all membership, lookup and dedup operations key on it case-sensitively.
// Every other field is optional and stored as scraped.
type Job struct {
	URL          string
	Title        string
	Creator      string
	Description  string
	Rating       string
	GameMode     string
	RouteType    string
	RouteLength  string
	Players      string
	Teams        string
	PlayCount    int
	CreationDate string
	LastUpdated  string
	LastPlayed   string

	VehicleClasses []string
	Locations      []string

	ScrapedAt time.Time
}

// NormalizeJob trims the scraped fields and fills the display defaults.
// The scrape produces ad-hoc records; this is the single place where they
// become a well-formed Job.
func NormalizeJob(job Job) Job {
	job.URL = strings.TrimSpace(job.URL)

	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		job.Title = "Untitled Job"
	}

	job.Creator = strings.TrimSpace(job.Creator)
	if job.Creator == "" {
		job.Creator = "Unknown"
	}

	job.Description = strings.TrimSpace(job.Description)
	job.Rating = strings.TrimSpace(job.Rating)
	job.GameMode = strings.TrimSpace(job.GameMode)
	job.RouteType = strings.TrimSpace(job.RouteType)
	job.RouteLength = strings.TrimSpace(job.RouteLength)
	job.Players = strings.TrimSpace(job.Players)
	job.Teams = strings.TrimSpace(job.Teams)
	job.CreationDate = strings.TrimSpace(job.CreationDate)
	job.LastUpdated = strings.TrimSpace(job.LastUpdated)
	job.LastPlayed = strings.TrimSpace(job.LastPlayed)

	return job
}
