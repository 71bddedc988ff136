package server

import (
	"errors"
	"net/http"

	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

const signedInPage = `<!DOCTYPE html>
<html><head><title>octosearch</title></head>
<body><p>Signed in to GitHub. You can close this window.</p></body></html>
`

func handleSignIn(f *flow.SignIn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authURL, err := f.Start()
		if err != nil {
			handleError(w, r, "fail to start sign-in", err)
			return
		}

		http.Redirect(w, r, authURL.String(), http.StatusFound)
	}
}

// handleSignInStatus picks up a token stored while the flow is idle, e.g. by the signin command
func handleSignInStatus(f *flow.SignIn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f.Status().State == model.SignInIdle {
			if _, err := f.Restore(r.Context()); err != nil && !errors.Is(err, types.ErrInvalidState) {
				handleError(w, r, "fail to load credential", err)
				return
			}
		}
		writeJSON(w, http.StatusOK, f.Status())
	}
}

func handleOAuthCallback(f *flow.SignIn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f.HandleRedirect(r.Context(), r.URL.Query()); err != nil {
			handleError(w, r, "fail to handle OAuth callback", err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		safeWrite(w, http.StatusOK, []byte(signedInPage))
	}
}
