package model

import (
	"fmt"
	"time"
)

const (
	NoDescription = "No description provided."
	NoLanguage    = "No language specified."
	UnknownDate   = "unknown"

	displayTimeLayout = "2006-01-02 15:04:05"
)

// updatedAt is yyyy-MM-dd'T'HH:mm:ssX: the zone is "Z", "+hh", "+hhmm" or "+hh:mm"
var updatedAtLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
}

// RepositoryView is the display form of a repository detail
type RepositoryView struct {
	FullName    string `json:"full_name"`
	AvatarURL   string `json:"avatar_url"`
	Stars       string `json:"stars"`
	Description string `json:"description"`
	Language    string `json:"language"`
	LastUpdate  string `json:"last_update"`
}

func NewRepositoryView(repo *Repository, loc *time.Location) *RepositoryView {
	if loc == nil {
		loc = time.UTC
	}

	view := &RepositoryView{
		FullName:    repo.FullName,
		AvatarURL:   repo.Owner.AvatarURL,
		Stars:       FormatStars(repo.Stars),
		Description: NoDescription,
		Language:    NoLanguage,
		LastUpdate:  FormatUpdatedAt(repo.UpdatedAt, loc),
	}
	if repo.Description != nil {
		view.Description = *repo.Description
	}
	if repo.Language != nil {
		view.Language = *repo.Language
	}

	return view
}

func FormatStars(n int) string {
	if n == 1 {
		return "1 star"
	}
	return fmt.Sprintf("%d stars", n)
}

// FormatUpdatedAt converts an API timestamp to the display layout. It never fails: unparsable input becomes UnknownDate.
func FormatUpdatedAt(s string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range updatedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc).Format(displayTimeLayout)
		}
	}
	return UnknownDate
}

type DetailStatus string

const (
	DetailStatusLoading DetailStatus = "loading"
	DetailStatusLoaded  DetailStatus = "loaded"
	DetailStatusFailed  DetailStatus = "failed"
)

type DetailState struct {
	Status  DetailStatus    `json:"status"`
	View    *RepositoryView `json:"view,omitempty"`
	Message string          `json:"message,omitempty"`
}
