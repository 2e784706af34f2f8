package userrepository

import (
	"context"
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
	db      *sqlx.DB
	schema  string
	newID   func() string
	nowFunc func() time.Time

	tracer trace.Tracer
}

func NewPostgres(db *sqlx.DB, schema string, newID func() string, nowFunc func() time.Time) *Postgres {
	tracer := otel.Tracer("gridline/userrepository/postgres")

	return &Postgres{
		db:      db,
		schema:  schema,
		newID:   newID,
		nowFunc: nowFunc,

		tracer: tracer,
	}
}

type dbUser struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

// CreateOrGetUser inserts the username if it is new and returns the stored
// row either way. The no-op DO UPDATE makes the insert return the existing
// row on conflict instead of nothing.
func (p *Postgres) CreateOrGetUser(ctx context.Context, username string) (domain.User, error) {
	ctx, span := p.tracer.Start(ctx, "Postgres.CreateOrGetUser")
	defer span.End()

	var user dbUser
	err := p.db.QueryRowxContext(
		ctx,
		fmt.Sprintf(`INSERT INTO %s.users
		(id, username, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (username)
		DO UPDATE SET
			username = EXCLUDED.username
		RETURNING id, username, created_at`,
			pq.QuoteIdentifier(p.schema)),
		p.newID(),
		username,
		p.nowFunc(),
	).StructScan(&user)
	if err != nil {
		err := fmt.Errorf("failed to insert or get user: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"username": username,
		})
		return domain.User{}, err
	}

	return domain.User{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (p *Postgres) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, span := p.tracer.Start(ctx, "Postgres.ListUsers")
	defer span.End()

	var stored []dbUser
	err := p.db.SelectContext(
		ctx,
		&stored,
		fmt.Sprintf(`SELECT id, username, created_at FROM %s.users ORDER BY created_at, username`,
			pq.QuoteIdentifier(p.schema)),
	)
	if err != nil {
		err := fmt.Errorf("failed to select users: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	users := make([]domain.User, 0, len(stored))
	for _, user := range stored {
		users = append(users, domain.User{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		})
	}

	return users, nil
}

func (p *Postgres) DeleteUser(ctx context.Context, username string) error {
	ctx, span := p.tracer.Start(ctx, "Postgres.DeleteUser")
	defer span.End()

	result, err := p.db.ExecContext(
		ctx,
		fmt.Sprintf(`DELETE FROM %s.users WHERE username = $1`, pq.QuoteIdentifier(p.schema)),
		username,
	)
	if err != nil {
		err := fmt.Errorf("failed to delete user: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"username": username,
		})
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("failed to get rows affected: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"username": username,
		})
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
