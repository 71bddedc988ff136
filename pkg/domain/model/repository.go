package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

// Owner is the account owning a repository. It is always embedded in Repository.
type Owner struct {
	Login     string `json:"login" firestore:"login"`
	AvatarURL string `json:"avatar_url" firestore:"avatar_url"`
}

// Repository represents a GitHub repository. JSON tags follow the GitHub REST API
// so the same type decodes API responses and is stored as a history entry.
type Repository struct {
	Name        string  `json:"name" firestore:"name"`
	FullName    string  `json:"full_name" firestore:"full_name"`
	Owner       Owner   `json:"owner" firestore:"owner"`
	Description *string `json:"description" firestore:"description"`
	Language    *string `json:"language" firestore:"language"`
	UpdatedAt   string  `json:"updated_at" firestore:"updated_at"`
	Stars       int     `json:"stargazers_count" firestore:"stargazers_count"`
}

// Key identifies the repository in API results and the history stores
func (x *Repository) Key() types.RepoFullName {
	return types.RepoFullName(x.FullName)
}

func (x *Repository) Validate() error {
	if x.FullName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "full name is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "name is empty", goerr.V("full_name", x.FullName))
	}
	if x.Owner.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner login is empty", goerr.V("full_name", x.FullName))
	}
	if x.Stars < 0 {
		return goerr.Wrap(types.ErrValidationFailed, "negative stargazers count",
			goerr.V("full_name", x.FullName),
			goerr.V("stars", x.Stars),
		)
	}
	return nil
}

// Copy returns a deep copy so stores never share optional fields with callers
func (x *Repository) Copy() *Repository {
	if x == nil {
		return nil
	}
	cpy := *x
	if x.Description != nil {
		v := *x.Description
		cpy.Description = &v
	}
	if x.Language != nil {
		v := *x.Language
		cpy.Language = &v
	}
	return &cpy
}
