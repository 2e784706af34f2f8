package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Amund211/gridline/internal/adapters/cache"
	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/reporting"
)

type ListJobs func(ctx context.Context) ([]domain.Job, error)

// SaveJob stores a scraped job. A duplicate URL fails with
// domain.ErrJobAlreadyExists unless overwrite is set, in which case the
// stored record is replaced (re-scrape).
type SaveJob func(ctx context.Context, job domain.Job, overwrite bool) (domain.Job, error)

type DeleteJob func(ctx context.Context, url string) error

type jobRepository interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	StoreJob(ctx context.Context, job domain.Job) error
	ReplaceJob(ctx context.Context, job domain.Job) error
	DeleteJob(ctx context.Context, url string) error
}

// The whole catalog is cached under a single key: it is small (tens to low
// thousands of jobs) and always listed in full.
const jobCatalogCacheKey = "catalog"

func BuildListJobsWithCache(
	catalogCache cache.Cache[[]domain.Job],
	repo jobRepository,
) ListJobs {
	return func(ctx context.Context) ([]domain.Job, error) {
		jobs, err := cache.GetOrCreate(ctx, catalogCache, jobCatalogCacheKey, func() ([]domain.Job, error) {
			return repo.ListJobs(ctx)
		})
		if err != nil {
			// NOTE: jobRepository implementations handle their own error reporting
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}
		return jobs, nil
	}
}

func BuildSaveJob(
	repo jobRepository,
	catalogCache cache.Cache[[]domain.Job],
	nowFunc func() time.Time,
) SaveJob {
	return func(ctx context.Context, job domain.Job, overwrite bool) (domain.Job, error) {
		job = domain.NormalizeJob(job)
		if job.URL == "" {
			err := domain.ErrMissingJobURL
			reporting.Report(ctx, err, map[string]string{
				"title": job.Title,
			})
			return domain.Job{}, err
		}

		job.ScrapedAt = nowFunc()

		var err error
		if overwrite {
			err = repo.ReplaceJob(ctx, job)
		} else {
			err = repo.StoreJob(ctx, job)
		}
		if err != nil {
			// NOTE: jobRepository implementations handle their own error reporting
			return domain.Job{}, fmt.Errorf("failed to store job: %w", err)
		}

		catalogCache.Delete(jobCatalogCacheKey)
		return job, nil
	}
}

func BuildDeleteJob(
	repo jobRepository,
	catalogCache cache.Cache[[]domain.Job],
) DeleteJob {
	return func(ctx context.Context, url string) error {
		if err := repo.DeleteJob(ctx, url); err != nil {
			// NOTE: jobRepository implementations handle their own error reporting
			return fmt.Errorf("failed to delete job: %w", err)
		}

		catalogCache.Delete(jobCatalogCacheKey)
		return nil
	}
}
