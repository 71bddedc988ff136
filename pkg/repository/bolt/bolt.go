// Package bolt stores the credential and the search history in a single bbolt file.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/repository"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketCredential = []byte("credential")
	bucketHistory    = []byte("history")
	// bucketHistoryOrder maps big endian sequence numbers to full names
	bucketHistoryOrder = []byte("history_order")

	keyGitHubCredential = []byte("github")
)

const openTimeout = time.Second

// DB owns the bbolt file. Writers are serialized by bbolt itself.
type DB struct {
	db *bolt.DB
}

var (
	_ interfaces.CredentialStore   = (*DB)(nil)
	_ interfaces.HistoryRepository = (*DB)(nil)
)

// Open opens or creates the database file at path, creating the parent directory
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("path", path))
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", path))
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketCredential, bucketHistory, bucketHistoryOrder} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return goerr.Wrap(err, "failed to create bucket", goerr.V("bucket", string(name)))
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

func (x *DB) Close() error {
	return x.db.Close()
}

func (x *DB) GetCredential(ctx context.Context) (*model.Credential, error) {
	var cred *model.Credential
	err := x.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketCredential).Get(keyGitHubCredential)
		if raw == nil {
			return nil
		}

		var v model.Credential
		if err := json.Unmarshal(raw, &v); err != nil {
			return goerr.Wrap(repository.ErrCorrupted, "failed to decode credential", goerr.V("cause", err.Error()))
		}
		cred = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cred, nil
}

func (x *DB) PutCredential(ctx context.Context, cred *model.Credential) error {
	if cred == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "credential is nil")
	}

	raw, err := json.Marshal(cred)
	if err != nil {
		return goerr.Wrap(err, "failed to encode credential")
	}

	return x.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketCredential).Put(keyGitHubCredential, raw); err != nil {
			return goerr.Wrap(err, "failed to put credential")
		}
		return nil
	})
}

type historyRecord struct {
	Seq  uint64            `json:"seq"`
	Repo *model.Repository `json:"repo"`
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func (x *DB) InsertOrUpdate(ctx context.Context, repo *model.Repository) error {
	if repo == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "repository is nil")
	}
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(err, "invalid history entry")
	}

	return x.db.Update(func(tx *bolt.Tx) error {
		history := tx.Bucket(bucketHistory)
		order := tx.Bucket(bucketHistoryOrder)
		key := []byte(repo.Key())

		if raw := history.Get(key); raw != nil {
			var old historyRecord
			if err := json.Unmarshal(raw, &old); err != nil {
				return goerr.Wrap(repository.ErrCorrupted, "failed to decode history entry",
					goerr.V("full_name", repo.FullName),
					goerr.V("cause", err.Error()),
				)
			}
			if err := order.Delete(seqKey(old.Seq)); err != nil {
				return goerr.Wrap(err, "failed to delete old order key", goerr.V("full_name", repo.FullName))
			}
		}

		seq, err := history.NextSequence()
		if err != nil {
			return goerr.Wrap(err, "failed to get next sequence")
		}

		raw, err := json.Marshal(historyRecord{Seq: seq, Repo: repo})
		if err != nil {
			return goerr.Wrap(err, "failed to encode history entry", goerr.V("full_name", repo.FullName))
		}

		if err := history.Put(key, raw); err != nil {
			return goerr.Wrap(err, "failed to put history entry", goerr.V("full_name", repo.FullName))
		}
		if err := order.Put(seqKey(seq), key); err != nil {
			return goerr.Wrap(err, "failed to put order key", goerr.V("full_name", repo.FullName))
		}
		return nil
	})
}

func (x *DB) List(ctx context.Context) ([]*model.Repository, error) {
	var repos []*model.Repository

	err := x.db.View(func(tx *bolt.Tx) error {
		history := tx.Bucket(bucketHistory)
		cursor := tx.Bucket(bucketHistoryOrder).Cursor()

		for k, name := cursor.Last(); k != nil; k, name = cursor.Prev() {
			raw := history.Get(name)
			if raw == nil {
				continue
			}

			var record historyRecord
			if err := json.Unmarshal(raw, &record); err != nil {
				return goerr.Wrap(repository.ErrCorrupted, "failed to decode history entry",
					goerr.V("full_name", string(name)),
					goerr.V("cause", err.Error()),
				)
			}
			repos = append(repos, record.Repo)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return repos, nil
}

func (x *DB) Clear(ctx context.Context) error {
	return x.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketHistory, bucketHistoryOrder} {
			if err := tx.DeleteBucket(name); err != nil {
				return goerr.Wrap(err, "failed to delete bucket", goerr.V("bucket", string(name)))
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return goerr.Wrap(err, "failed to create bucket", goerr.V("bucket", string(name)))
			}
		}
		return nil
	})
}
