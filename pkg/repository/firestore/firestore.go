package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionHistory = "search_history"
	collectionMeta    = "search_history_meta"
	docSequence       = "sequence"
)

// HistoryRepository keeps one document per repository. Recency is the Seq field
// drawn from a counter document in the same transaction as the write.
type HistoryRepository struct {
	client *firestore.Client
}

var _ interfaces.HistoryRepository = (*HistoryRepository)(nil)

type historyDoc struct {
	Repo model.Repository `firestore:"repo"`
	Seq  int64            `firestore:"seq"`
}

type sequenceDoc struct {
	Value int64 `firestore:"value"`
}

// New creates a Firestore client. databaseID may be empty for the default database.
func New(ctx context.Context, projectID, databaseID string) (*HistoryRepository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &HistoryRepository{
		client: client,
	}, nil
}

func (r *HistoryRepository) Close() error {
	return r.client.Close()
}

// ToFirestoreID converts owner and repo to a Firestore-safe document ID.
// GitHub owner and repository names cannot contain colons.
func ToFirestoreID(owner, repo string) (string, error) {
	if owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return owner + ":" + repo, nil
}

func (r *HistoryRepository) InsertOrUpdate(ctx context.Context, repo *model.Repository) error {
	if repo == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "repository is nil")
	}
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(err, "invalid history entry")
	}

	docID, err := ToFirestoreID(repo.Owner.Login, repo.Name)
	if err != nil {
		return err
	}

	seqRef := r.client.Collection(collectionMeta).Doc(docSequence)
	docRef := r.client.Collection(collectionHistory).Doc(docID)

	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var seq sequenceDoc
		snap, err := tx.Get(seqRef)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return goerr.Wrap(err, "failed to get history sequence")
		default:
			if err := snap.DataTo(&seq); err != nil {
				return goerr.Wrap(repository.ErrCorrupted, "failed to decode history sequence", goerr.V("cause", err.Error()))
			}
		}
		seq.Value++

		if err := tx.Set(seqRef, seq); err != nil {
			return goerr.Wrap(err, "failed to set history sequence")
		}
		if err := tx.Set(docRef, historyDoc{Repo: *repo, Seq: seq.Value}); err != nil {
			return goerr.Wrap(err, "failed to set history entry")
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to upsert history entry",
			goerr.V("full_name", repo.FullName),
		)
	}

	return nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]*model.Repository, error) {
	iter := r.client.Collection(collectionHistory).OrderBy("seq", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var repos []*model.Repository
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate search history")
		}

		var doc historyDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(repository.ErrCorrupted, "failed to decode history entry",
				goerr.V("docID", snap.Ref.ID),
				goerr.V("cause", err.Error()),
			)
		}
		repo := doc.Repo
		repos = append(repos, &repo)
	}

	return repos, nil
}

// Clear removes every entry in a single transaction
func (r *HistoryRepository) Clear(ctx context.Context) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.Documents(r.client.Collection(collectionHistory)).GetAll()
		if err != nil {
			return goerr.Wrap(err, "failed to get search history")
		}

		for _, snap := range snaps {
			if err := tx.Delete(snap.Ref); err != nil {
				return goerr.Wrap(err, "failed to delete history entry", goerr.V("docID", snap.Ref.ID))
			}
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to clear search history")
	}

	return nil
}
