package usecase_test

import (
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
)

func mustURL(t *testing.T, raw string) func() *url.URL {
	t.Helper()
	u := gt.R1(url.Parse(raw)).NoError(t)
	return func() *url.URL { return u }
}

func strPtr(s string) *string {
	return &s
}

func newRepo(owner, name string) *model.Repository {
	return &model.Repository{
		Name:     name,
		FullName: owner + "/" + name,
		Owner: model.Owner{
			Login:     owner,
			AvatarURL: "https://avatars.example.com/" + owner,
		},
		Description: strPtr("description of " + name),
		Language:    strPtr("Go"),
		UpdatedAt:   "2021-05-01T12:00:00Z",
		Stars:       1,
	}
}
