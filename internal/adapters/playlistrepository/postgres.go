package playlistrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/reporting"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Postgres stores each playlist as a row of JSONB documents. Playlists are
// small (tens of jobs, a handful of players) and always read and written
// whole, so there is no per-member table.
type Postgres struct {
	db     *sqlx.DB
	schema string

	tracer trace.Tracer
}

func NewPostgres(db *sqlx.DB, schema string) *Postgres {
	tracer := otel.Tracer("gridline/playlistrepository/postgres")

	return &Postgres{
		db:     db,
		schema: schema,

		tracer: tracer,
	}
}

type dbPlaylist struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Jobs      []byte    `db:"jobs"`
	Stats     []byte    `db:"stats"`
	Players   []byte    `db:"players"`
	Scores    []byte    `db:"scores"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toDBPlaylist(playlist domain.Playlist) (dbPlaylist, error) {
	jobs, err := json.Marshal(playlist.Jobs)
	if err != nil {
		return dbPlaylist{}, fmt.Errorf("failed to marshal jobs: %w", err)
	}
	stats, err := json.Marshal(playlist.Stats)
	if err != nil {
		return dbPlaylist{}, fmt.Errorf("failed to marshal stats: %w", err)
	}
	players, err := json.Marshal(playlist.Players)
	if err != nil {
		return dbPlaylist{}, fmt.Errorf("failed to marshal players: %w", err)
	}
	scores, err := json.Marshal(playlist.Scores)
	if err != nil {
		return dbPlaylist{}, fmt.Errorf("failed to marshal scores: %w", err)
	}

	return dbPlaylist{
		ID:        playlist.ID,
		Name:      playlist.Name,
		Jobs:      jobs,
		Stats:     stats,
		Players:   players,
		Scores:    scores,
		CreatedAt: playlist.CreatedAt,
		UpdatedAt: playlist.UpdatedAt,
	}, nil
}

func fromDBPlaylist(stored dbPlaylist) (domain.Playlist, error) {
	playlist := domain.Playlist{
		ID:        stored.ID,
		Name:      stored.Name,
		CreatedAt: stored.CreatedAt,
		UpdatedAt: stored.UpdatedAt,
	}

	if err := json.Unmarshal(stored.Jobs, &playlist.Jobs); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to unmarshal jobs: %w", err)
	}
	if err := json.Unmarshal(stored.Stats, &playlist.Stats); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	if err := json.Unmarshal(stored.Players, &playlist.Players); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to unmarshal players: %w", err)
	}
	if err := json.Unmarshal(stored.Scores, &playlist.Scores); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to unmarshal scores: %w", err)
	}

	return playlist, nil
}

const playlistColumns = `id, name, jobs, stats, players, scores, created_at, updated_at`

func (p *Postgres) CreatePlaylist(ctx context.Context, playlist domain.Playlist) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.CreatePlaylist")
	defer span.End()

	stored, err := toDBPlaylist(playlist)
	if err != nil {
		reporting.Report(ctx, err, map[string]string{
			"playlistID": playlist.ID,
		})
		return err
	}

	_, err = p.db.NamedExecContext(
		ctx,
		fmt.Sprintf(`INSERT INTO %s.playlists
		(%s)
		VALUES (:id, :name, :jobs, :stats, :players, :scores, :created_at, :updated_at)`,
			pq.QuoteIdentifier(p.schema), playlistColumns),
		stored,
	)
	if err != nil {
		err := fmt.Errorf("failed to insert playlist: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"playlistID": playlist.ID,
		})
		return err
	}

	return nil
}

func (p *Postgres) GetPlaylist(ctx context.Context, id string) (domain.Playlist, error) {
	ctx, span := p.tracer.Start(ctx, "Postgres.GetPlaylist")
	defer span.End()

	var stored dbPlaylist
	err := p.db.GetContext(
		ctx,
		&stored,
		fmt.Sprintf(`SELECT %s FROM %s.playlists WHERE id = $1`, playlistColumns, pq.QuoteIdentifier(p.schema)),
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Playlist{}, domain.ErrPlaylistNotFound
	}
	if err != nil {
		err := fmt.Errorf("failed to select playlist: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"playlistID": id,
		})
		return domain.Playlist{}, err
	}

	playlist, err := fromDBPlaylist(stored)
	if err != nil {
		reporting.Report(ctx, err, map[string]string{
			"playlistID": id,
		})
		return domain.Playlist{}, err
	}

	return playlist, nil
}

func (p *Postgres) ListPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	ctx, span := p.tracer.Start(ctx, "Postgres.ListPlaylists")
	defer span.End()

	var stored []dbPlaylist
	err := p.db.SelectContext(
		ctx,
		&stored,
		fmt.Sprintf(`SELECT %s FROM %s.playlists ORDER BY created_at, id`, playlistColumns, pq.QuoteIdentifier(p.schema)),
	)
	if err != nil {
		err := fmt.Errorf("failed to select playlists: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	playlists := make([]domain.Playlist, 0, len(stored))
	for _, storedPlaylist := range stored {
		playlist, err := fromDBPlaylist(storedPlaylist)
		if err != nil {
			reporting.Report(ctx, err, map[string]string{
				"playlistID": storedPlaylist.ID,
			})
			return nil, err
		}
		playlists = append(playlists, playlist)
	}

	return playlists, nil
}

func (p *Postgres) UpdatePlaylist(ctx context.Context, playlist domain.Playlist) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.UpdatePlaylist")
	defer span.End()

	stored, err := toDBPlaylist(playlist)
	if err != nil {
		reporting.Report(ctx, err, map[string]string{
			"playlistID": playlist.ID,
		})
		return err
	}

	result, err := p.db.NamedExecContext(
		ctx,
		fmt.Sprintf(`UPDATE %s.playlists
		SET
			name = :name,
			jobs = :jobs,
			stats = :stats,
			players = :players,
			scores = :scores,
			updated_at = :updated_at
		WHERE id = :id`, pq.QuoteIdentifier(p.schema)),
		stored,
	)
	if err != nil {
		err := fmt.Errorf("failed to update playlist: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"playlistID": playlist.ID,
		})
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("failed to get rows affected: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"playlistID": playlist.ID,
		})
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrPlaylistNotFound
	}

	return nil
}

func (p *Postgres) DeletePlaylist(ctx context.Context, id string) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.DeletePlaylist")
	defer span.End()

	result, err := p.db.ExecContext(
		ctx,
		fmt.Sprintf(`DELETE FROM %s.playlists WHERE id = $1`, pq.QuoteIdentifier(p.schema)),
		id,
	)
	if err != nil {
		err := fmt.Errorf("failed to delete playlist: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"playlistID": id,
		})
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("failed to get rows affected: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"playlistID": id,
		})
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrPlaylistNotFound
	}

	return nil
}
