package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/repository/bolt"
	"github.com/m-mizutani/octosearch/pkg/repository/firestore"
	"github.com/m-mizutani/octosearch/pkg/repository/postgres"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
	"github.com/m-mizutani/octosearch/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	dbPath              string
	postgresDSN         string `masq:"secret"`
	firestoreProjectID  string
	firestoreDatabaseID string
}

// DefaultDBPath is <user config dir>/octosearch/octosearch.db
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "octosearch.db"
	}
	return filepath.Join(dir, "octosearch", "octosearch.db")
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-path",
			Usage:       "Path of the local database keeping the access token and history",
			Category:    "Storage",
			Value:       DefaultDBPath(),
			Destination: &x.dbPath,
			Sources:     cli.EnvVars("OCTOSEARCH_DB_PATH"),
		},
		&cli.StringFlag{
			Name:        "postgres-dsn",
			Usage:       "PostgreSQL DSN to keep history in (optional)",
			Category:    "Storage",
			Destination: &x.postgresDSN,
			Sources:     cli.EnvVars("OCTOSEARCH_POSTGRES_DSN"),
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID to keep history in (optional)",
			Category:    "Storage",
			Destination: &x.firestoreProjectID,
			Sources:     cli.EnvVars("OCTOSEARCH_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Storage",
			Value:       "(default)",
			Destination: &x.firestoreDatabaseID,
			Sources:     cli.EnvVars("OCTOSEARCH_FIRESTORE_DATABASE_ID"),
		},
	}
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("DBPath", x.dbPath),
		slog.Bool("PostgreSQL", x.postgresDSN != ""),
		slog.String("FirestoreProjectID", x.firestoreProjectID),
		slog.String("FirestoreDatabaseID", x.firestoreDatabaseID),
	)
}

// Stores are the opened stores. Close releases all of them.
type Stores struct {
	Credentials interfaces.CredentialStore
	History     interfaces.HistoryRepository

	closers []io.Closer
}

func (x *Stores) Close(ctx context.Context) {
	for i := len(x.closers) - 1; i >= 0; i-- {
		safe.Close(ctx, x.closers[i])
	}
}

// Open opens the local database for the credential, and history in PostgreSQL or
// Firestore when configured, otherwise in the local database.
func (x *Storage) Open(ctx context.Context) (*Stores, error) {
	if x.postgresDSN != "" && x.firestoreProjectID != "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--postgres-dsn and --firestore-project-id are exclusive")
	}

	db, err := bolt.Open(x.dbPath)
	if err != nil {
		return nil, err
	}
	stores := &Stores{
		Credentials: db,
		History:     db,
		closers:     []io.Closer{db},
	}

	switch {
	case x.postgresDSN != "":
		repo, err := postgres.New(ctx, x.postgresDSN)
		if err != nil {
			stores.Close(ctx)
			return nil, err
		}
		stores.History = repo
		stores.closers = append(stores.closers, repo)
		logging.From(ctx).Debug("history is kept in PostgreSQL")

	case x.firestoreProjectID != "":
		repo, err := firestore.New(ctx, x.firestoreProjectID, x.firestoreDatabaseID)
		if err != nil {
			stores.Close(ctx)
			return nil, err
		}
		stores.History = repo
		stores.closers = append(stores.closers, repo)
		logging.From(ctx).Debug("history is kept in Firestore", "project_id", x.firestoreProjectID)
	}

	return stores, nil
}
