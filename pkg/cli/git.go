package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

// DetectGitHubRepo reads owner and name of the GitHub repository from the origin
// remote of the git repository containing dir
func DetectGitHubRepo(dir string) (owner, name string, err error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", "", goerr.Wrap(types.ErrMissingLoginData, "no remote URL found")
	}

	return ParseGitHubRemoteURL(remote.Config().URLs[0])
}

// ParseGitHubRemoteURL accepts git@github.com:owner/repo.git, ssh://git@github.com/owner/repo.git
// and https://github.com/owner/repo(.git)
func ParseGitHubRemoteURL(url string) (owner, name string, err error) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		path = url[strings.Index(url, "github.com/")+len("github.com/"):]
	default:
		return "", "", goerr.Wrap(types.ErrMissingLoginData, "not a GitHub remote URL", goerr.V("url", url))
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.Wrap(types.ErrMissingLoginData, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return parts[0], parts[1], nil
}
