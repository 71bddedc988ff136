package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

// TestHistoryRepository runs all conformance cases of HistoryRepository. Cases
// use random repository names so a shared backend can be used, except ClearAll
// which removes every entry.
func TestHistoryRepository(t *testing.T, repo interfaces.HistoryRepository) {
	t.Run("InsertAndList", func(t *testing.T) {
		TestInsertAndList(t, repo)
	})
	t.Run("UpsertMovesToFront", func(t *testing.T) {
		TestUpsertMovesToFront(t, repo)
	})
	t.Run("OptionalFields", func(t *testing.T) {
		TestOptionalFields(t, repo)
	})
	t.Run("InvalidEntry", func(t *testing.T) {
		TestInvalidEntry(t, repo)
	})
	t.Run("ClearAll", func(t *testing.T) {
		TestClearAll(t, repo)
	})
}

// NewRepository returns a valid repository with a random owner and name
func NewRepository() *model.Repository {
	owner := fmt.Sprintf("owner-%s", uuid.New().String()[:8])
	name := fmt.Sprintf("repo-%s", uuid.New().String()[:8])
	desc := "test repository " + name
	lang := "Go"

	return &model.Repository{
		Name:     name,
		FullName: owner + "/" + name,
		Owner: model.Owner{
			Login:     owner,
			AvatarURL: "https://avatars.example.com/" + owner,
		},
		Description: &desc,
		Language:    &lang,
		UpdatedAt:   "2021-05-01T12:00:00Z",
		Stars:       42,
	}
}

// pick keeps entries of names in the order List returned them
func pick(repos []*model.Repository, names ...string) []string {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}

	var picked []string
	for _, repo := range repos {
		if want[repo.FullName] {
			picked = append(picked, repo.FullName)
		}
	}
	return picked
}

func TestInsertAndList(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	r1, r2, r3 := NewRepository(), NewRepository(), NewRepository()
	for _, r := range []*model.Repository{r1, r2, r3} {
		gt.NoError(t, repo.InsertOrUpdate(ctx, r))
	}

	repos, err := repo.List(ctx)
	gt.NoError(t, err)
	gt.V(t, pick(repos, r1.FullName, r2.FullName, r3.FullName)).Equal([]string{
		r3.FullName, r2.FullName, r1.FullName,
	})

	for _, got := range repos {
		if got.FullName != r2.FullName {
			continue
		}
		gt.V(t, got.Name).Equal(r2.Name)
		gt.V(t, got.Owner).Equal(r2.Owner)
		gt.V(t, *got.Description).Equal(*r2.Description)
		gt.V(t, *got.Language).Equal(*r2.Language)
		gt.V(t, got.UpdatedAt).Equal(r2.UpdatedAt)
		gt.V(t, got.Stars).Equal(r2.Stars)
	}
}

func TestUpsertMovesToFront(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	r1, r2 := NewRepository(), NewRepository()
	gt.NoError(t, repo.InsertOrUpdate(ctx, r1))
	gt.NoError(t, repo.InsertOrUpdate(ctx, r2))

	updated := r1.Copy()
	updated.Stars = 100
	gt.NoError(t, repo.InsertOrUpdate(ctx, updated))

	repos, err := repo.List(ctx)
	gt.NoError(t, err)
	gt.V(t, pick(repos, r1.FullName, r2.FullName)).Equal([]string{
		r1.FullName, r2.FullName,
	})

	for _, got := range repos {
		if got.FullName == r1.FullName {
			gt.V(t, got.Stars).Equal(100)
		}
	}
}

func TestOptionalFields(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	r := NewRepository()
	r.Description = nil
	r.Language = nil
	r.UpdatedAt = "garbage"
	gt.NoError(t, repo.InsertOrUpdate(ctx, r))

	repos, err := repo.List(ctx)
	gt.NoError(t, err)

	var found *model.Repository
	for _, got := range repos {
		if got.FullName == r.FullName {
			found = got
		}
	}
	gt.V(t, found).NotEqual((*model.Repository)(nil))
	gt.V(t, found.Description).Equal((*string)(nil))
	gt.V(t, found.Language).Equal((*string)(nil))
	gt.V(t, found.UpdatedAt).Equal("garbage")
}

func TestInvalidEntry(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	r := NewRepository()
	r.FullName = ""
	err := repo.InsertOrUpdate(ctx, r)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}

func TestClearAll(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	gt.NoError(t, repo.InsertOrUpdate(ctx, NewRepository()))
	gt.NoError(t, repo.InsertOrUpdate(ctx, NewRepository()))

	gt.NoError(t, repo.Clear(ctx))

	repos, err := repo.List(ctx)
	gt.NoError(t, err)
	gt.A(t, repos).Length(0)

	// clearing an empty history is not an error
	gt.NoError(t, repo.Clear(ctx))

	r := NewRepository()
	gt.NoError(t, repo.InsertOrUpdate(ctx, r))
	repos, err = repo.List(ctx)
	gt.NoError(t, err)
	gt.A(t, repos).Length(1)
	gt.V(t, repos[0].FullName).Equal(r.FullName)
}
