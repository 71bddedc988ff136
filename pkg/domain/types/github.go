package types

import "log/slog"

type (
	GitHubClientID     string
	GitHubClientSecret string
	AccessToken        string
	RepoFullName       string
	RequestID          string
)

func (x GitHubClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubClientSecret) String() string {
	return "***********"
}

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}
