package domaintest

import (
	"time"

	"github.com/Amund211/gridline/internal/domain"
)

type JobBuilder struct {
	job domain.Job
}

func NewJobBuilder(url string) *JobBuilder {
	return &JobBuilder{
		job: domain.Job{
			URL:         url,
			Title:       "Test Race",
			Creator:     "TestCreator",
			Rating:      "95.0%",
			GameMode:    "Race",
			RouteType:   "Lap",
			RouteLength: "5.2 miles",
			ScrapedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (b *JobBuilder) WithTitle(title string) *JobBuilder {
	b.job.Title = title
	return b
}

func (b *JobBuilder) WithCreator(creator string) *JobBuilder {
	b.job.Creator = creator
	return b
}

func (b *JobBuilder) WithGameMode(gameMode string) *JobBuilder {
	b.job.GameMode = gameMode
	return b
}

func (b *JobBuilder) WithRouteType(routeType string) *JobBuilder {
	b.job.RouteType = routeType
	return b
}

func (b *JobBuilder) WithRouteLength(routeLength string) *JobBuilder {
	b.job.RouteLength = routeLength
	return b
}

func (b *JobBuilder) WithPlayCount(playCount int) *JobBuilder {
	b.job.PlayCount = playCount
	return b
}

func (b *JobBuilder) WithCreationDate(creationDate string) *JobBuilder {
	b.job.CreationDate = creationDate
	return b
}

func (b *JobBuilder) WithLastPlayed(lastPlayed string) *JobBuilder {
	b.job.LastPlayed = lastPlayed
	return b
}

func (b *JobBuilder) Build() domain.Job {
	return b.job
}
