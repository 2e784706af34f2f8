package jobrepository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/reporting"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Postgres struct {
	db     *sqlx.DB
	schema string

	tracer trace.Tracer
}

func NewPostgres(db *sqlx.DB, schema string) *Postgres {
	tracer := otel.Tracer("gridline/jobrepository/postgres")

	return &Postgres{
		db:     db,
		schema: schema,

		tracer: tracer,
	}
}

type dbJob struct {
	URL            string    `db:"url"`
	Title          string    `db:"title"`
	Creator        string    `db:"creator"`
	Description    string    `db:"description"`
	Rating         string    `db:"rating"`
	GameMode       string    `db:"game_mode"`
	RouteType      string    `db:"route_type"`
	RouteLength    string    `db:"route_length"`
	Players        string    `db:"players"`
	Teams          string    `db:"teams"`
	PlayCount      int       `db:"play_count"`
	CreationDate   string    `db:"creation_date"`
	LastUpdated    string    `db:"last_updated"`
	LastPlayed     string    `db:"last_played"`
	VehicleClasses []byte    `db:"vehicle_classes"`
	Locations      []byte    `db:"locations"`
	ScrapedAt      time.Time `db:"scraped_at"`
}

func toDBJob(job domain.Job) (dbJob, error) {
	vehicleClasses, err := json.Marshal(job.VehicleClasses)
	if err != nil {
		return dbJob{}, fmt.Errorf("failed to marshal vehicle classes: %w", err)
	}
	locations, err := json.Marshal(job.Locations)
	if err != nil {
		return dbJob{}, fmt.Errorf("failed to marshal locations: %w", err)
	}

	return dbJob{
		URL:            job.URL,
		Title:          job.Title,
		Creator:        job.Creator,
		Description:    job.Description,
		Rating:         job.Rating,
		GameMode:       job.GameMode,
		RouteType:      job.RouteType,
		RouteLength:    job.RouteLength,
		Players:        job.Players,
		Teams:          job.Teams,
		PlayCount:      job.PlayCount,
		CreationDate:   job.CreationDate,
		LastUpdated:    job.LastUpdated,
		LastPlayed:     job.LastPlayed,
		VehicleClasses: vehicleClasses,
		Locations:      locations,
		ScrapedAt:      job.ScrapedAt,
	}, nil
}

func fromDBJob(stored dbJob) (domain.Job, error) {
	var vehicleClasses []string
	if err := json.Unmarshal(stored.VehicleClasses, &vehicleClasses); err != nil {
		return domain.Job{}, fmt.Errorf("failed to unmarshal vehicle classes: %w", err)
	}
	var locations []string
	if err := json.Unmarshal(stored.Locations, &locations); err != nil {
		return domain.Job{}, fmt.Errorf("failed to unmarshal locations: %w", err)
	}

	return domain.Job{
		URL:            stored.URL,
		Title:          stored.Title,
		Creator:        stored.Creator,
		Description:    stored.Description,
		Rating:         stored.Rating,
		GameMode:       stored.GameMode,
		RouteType:      stored.RouteType,
		RouteLength:    stored.RouteLength,
		Players:        stored.Players,
		Teams:          stored.Teams,
		PlayCount:      stored.PlayCount,
		CreationDate:   stored.CreationDate,
		LastUpdated:    stored.LastUpdated,
		LastPlayed:     stored.LastPlayed,
		VehicleClasses: vehicleClasses,
		Locations:      locations,
		ScrapedAt:      stored.ScrapedAt,
	}, nil
}

const jobColumns = `url, title, creator, description, rating, game_mode, route_type, route_length,
		players, teams, play_count, creation_date, last_updated, last_played,
		vehicle_classes, locations, scraped_at`

func (p *Postgres) ListJobs(ctx context.Context) ([]domain.Job, error) {
	ctx, span := p.tracer.Start(ctx, "Postgres.ListJobs")
	defer span.End()

	var stored []dbJob
	err := p.db.SelectContext(
		ctx,
		&stored,
		fmt.Sprintf(`SELECT %s FROM %s.jobs ORDER BY scraped_at, url`, jobColumns, pq.QuoteIdentifier(p.schema)),
	)
	if err != nil {
		err := fmt.Errorf("failed to select jobs: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	jobs := make([]domain.Job, 0, len(stored))
	for _, storedJob := range stored {
		job, err := fromDBJob(storedJob)
		if err != nil {
			reporting.Report(ctx, err, map[string]string{
				"url": storedJob.URL,
			})
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (p *Postgres) StoreJob(ctx context.Context, job domain.Job) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.StoreJob")
	defer span.End()

	stored, err := toDBJob(job)
	if err != nil {
		reporting.Report(ctx, err, map[string]string{
			"url": job.URL,
		})
		return err
	}

	result, err := p.db.NamedExecContext(
		ctx,
		fmt.Sprintf(`INSERT INTO %s.jobs
		(%s)
		VALUES (:url, :title, :creator, :description, :rating, :game_mode, :route_type, :route_length,
			:players, :teams, :play_count, :creation_date, :last_updated, :last_played,
			:vehicle_classes, :locations, :scraped_at)
		ON CONFLICT (url) DO NOTHING`, pq.QuoteIdentifier(p.schema), jobColumns),
		stored,
	)
	if err != nil {
		err := fmt.Errorf("failed to insert job: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"url": job.URL,
		})
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("failed to get rows affected: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"url": job.URL,
		})
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrJobAlreadyExists
	}

	return nil
}

func (p *Postgres) ReplaceJob(ctx context.Context, job domain.Job) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.ReplaceJob")
	defer span.End()

	stored, err := toDBJob(job)
	if err != nil {
		reporting.Report(ctx, err, map[string]string{
			"url": job.URL,
		})
		return err
	}

	_, err = p.db.NamedExecContext(
		ctx,
		fmt.Sprintf(`INSERT INTO %s.jobs
		(%s)
		VALUES (:url, :title, :creator, :description, :rating, :game_mode, :route_type, :route_length,
			:players, :teams, :play_count, :creation_date, :last_updated, :last_played,
			:vehicle_classes, :locations, :scraped_at)
		ON CONFLICT (url)
		DO UPDATE SET
			title = EXCLUDED.title,
			creator = EXCLUDED.creator,
			description = EXCLUDED.description,
			rating = EXCLUDED.rating,
			game_mode = EXCLUDED.game_mode,
			route_type = EXCLUDED.route_type,
			route_length = EXCLUDED.route_length,
			players = EXCLUDED.players,
			teams = EXCLUDED.teams,
			play_count = EXCLUDED.play_count,
			creation_date = EXCLUDED.creation_date,
			last_updated = EXCLUDED.last_updated,
			last_played = EXCLUDED.last_played,
			vehicle_classes = EXCLUDED.vehicle_classes,
			locations = EXCLUDED.locations,
			scraped_at = EXCLUDED.scraped_at`, pq.QuoteIdentifier(p.schema), jobColumns),
		stored,
	)
	if err != nil {
		err := fmt.Errorf("failed to upsert job: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"url": job.URL,
		})
		return err
	}

	return nil
}

func (p *Postgres) DeleteJob(ctx context.Context, url string) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.DeleteJob")
	defer span.End()

	result, err := p.db.ExecContext(
		ctx,
		fmt.Sprintf(`DELETE FROM %s.jobs WHERE url = $1`, pq.QuoteIdentifier(p.schema)),
		url,
	)
	if err != nil {
		err := fmt.Errorf("failed to delete job: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"url": url,
		})
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("failed to get rows affected: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"url": url,
		})
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrJobNotFound
	}

	return nil
}
