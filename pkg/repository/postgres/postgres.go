// Package postgres keeps the search history in a PostgreSQL table so that it can be
// shared between hosts running the server.
package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/repository"
	"github.com/m-mizutani/octosearch/pkg/utils/safe"
)

const schema = `
CREATE SEQUENCE IF NOT EXISTS search_history_seq;
CREATE TABLE IF NOT EXISTS search_history (
	full_name        TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	owner_login      TEXT NOT NULL,
	owner_avatar_url TEXT NOT NULL,
	description      TEXT,
	language         TEXT,
	updated_at       TEXT NOT NULL,
	stargazers_count INTEGER NOT NULL,
	seq              BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS search_history_seq_idx ON search_history (seq DESC);
`

const upsertQuery = `
INSERT INTO search_history
	(full_name, name, owner_login, owner_avatar_url, description, language, updated_at, stargazers_count, seq)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, nextval('search_history_seq'))
ON CONFLICT (full_name) DO UPDATE SET
	name = EXCLUDED.name,
	owner_login = EXCLUDED.owner_login,
	owner_avatar_url = EXCLUDED.owner_avatar_url,
	description = EXCLUDED.description,
	language = EXCLUDED.language,
	updated_at = EXCLUDED.updated_at,
	stargazers_count = EXCLUDED.stargazers_count,
	seq = EXCLUDED.seq
`

const listQuery = `
SELECT full_name, name, owner_login, owner_avatar_url, description, language, updated_at, stargazers_count
FROM search_history
ORDER BY seq DESC
`

type HistoryRepository struct {
	db *sql.DB
}

var _ interfaces.HistoryRepository = (*HistoryRepository)(nil)

// New connects to dsn and creates the history table when missing
func New(ctx context.Context, dsn string) (*HistoryRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database")
	}

	if err := db.PingContext(ctx); err != nil {
		safe.Close(ctx, db)
		return nil, goerr.Wrap(err, "failed to ping database")
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		safe.Close(ctx, db)
		return nil, goerr.Wrap(err, "failed to migrate search history table")
	}

	return &HistoryRepository{db: db}, nil
}

func (r *HistoryRepository) Close() error {
	return r.db.Close()
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func (r *HistoryRepository) InsertOrUpdate(ctx context.Context, repo *model.Repository) error {
	if repo == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "repository is nil")
	}
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(err, "invalid history entry")
	}

	_, err := r.db.ExecContext(ctx, upsertQuery,
		string(repo.Key()),
		repo.Name,
		repo.Owner.Login,
		repo.Owner.AvatarURL,
		toNullString(repo.Description),
		toNullString(repo.Language),
		repo.UpdatedAt,
		repo.Stars,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert history entry", goerr.V("full_name", repo.FullName))
	}

	return nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]*model.Repository, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query search history")
	}
	defer safe.Close(ctx, rows)

	var repos []*model.Repository
	for rows.Next() {
		var (
			repo        model.Repository
			description sql.NullString
			language    sql.NullString
		)
		if err := rows.Scan(
			&repo.FullName,
			&repo.Name,
			&repo.Owner.Login,
			&repo.Owner.AvatarURL,
			&description,
			&language,
			&repo.UpdatedAt,
			&repo.Stars,
		); err != nil {
			return nil, goerr.Wrap(err, "failed to scan history entry")
		}
		repo.Description = fromNullString(description)
		repo.Language = fromNullString(language)
		repos = append(repos, &repo)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate search history")
	}

	return repos, nil
}

func (r *HistoryRepository) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	if _, err := tx.ExecContext(ctx, `DELETE FROM search_history`); err != nil {
		return goerr.Wrap(err, "failed to delete search history")
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit transaction")
	}

	return nil
}
