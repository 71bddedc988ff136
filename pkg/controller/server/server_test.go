package server_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/controller/server"
	"github.com/m-mizutani/octosearch/pkg/domain/mock"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/infra"
	"github.com/m-mizutani/octosearch/pkg/repository/memory"
	"github.com/m-mizutani/octosearch/pkg/usecase"
)

func newRepo(owner, name string) *model.Repository {
	return &model.Repository{
		Name:      name,
		FullName:  owner + "/" + name,
		Owner:     model.Owner{Login: owner, AvatarURL: "https://example.com/" + owner + ".png"},
		UpdatedAt: "2021-05-01T12:00:00Z",
		Stars:     2,
	}
}

func serve(srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})
	rec := serve(srv, http.MethodGet, "/health", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name   string
		query  string
		result *model.SearchResult
		err    error
		code   int
	}{
		{
			name:  "found",
			query: "octocat",
			result: &model.SearchResult{TotalCount: 2, Items: []*model.Repository{
				newRepo("octocat", "a"), newRepo("octocat", "b"),
			}},
			code: http.StatusOK,
		},
		{name: "empty result", query: "zzz", err: goerr.Wrap(types.ErrEmptyResult, "no repository matched"), code: http.StatusNotFound},
		{name: "network failure", query: "octocat", err: goerr.Wrap(types.ErrNetwork, "connection refused"), code: http.StatusBadGateway},
		{name: "not signed in", query: "octocat", err: goerr.Wrap(types.ErrUnauthenticated, "no token"), code: http.StatusUnauthorized},
		{name: "empty query", query: "", code: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mock.UseCaseMock{
				SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
					gt.V(t, query).Equal(tc.query)
					return tc.result, tc.err
				},
			}
			srv := server.New(uc)

			rec := serve(srv, http.MethodGet, "/api/search?q="+url.QueryEscape(tc.query), "")
			gt.V(t, rec.Code).Equal(tc.code)

			if tc.code != http.StatusOK {
				gt.V(t, decodeError(t, rec)).NotEqual("")
				return
			}

			var result model.SearchResult
			gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			gt.V(t, result.TotalCount).Equal(2)
			gt.V(t, result.Items[0].FullName).Equal("octocat/a")
			gt.V(t, result.Items[1].FullName).Equal("octocat/b")
		})
	}

	t.Run("empty result message", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			SearchRepositoriesFunc: func(ctx context.Context, query string) (*model.SearchResult, error) {
				return nil, goerr.Wrap(types.ErrEmptyResult, "no repository matched")
			},
		}
		rec := serve(server.New(uc), http.MethodGet, "/api/search?q=zzz", "")
		gt.V(t, decodeError(t, rec)).Equal("No search result")
	})
}

func TestGetRepository(t *testing.T) {
	t.Run("returns view", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				gt.V(t, owner).Equal("foo")
				gt.V(t, name).Equal("bar")
				return newRepo(owner, name), nil
			},
		}
		rec := serve(server.New(uc), http.MethodGet, "/api/repos/foo/bar", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var view model.RepositoryView
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		gt.V(t, view).Equal(model.RepositoryView{
			FullName:    "foo/bar",
			AvatarURL:   "https://example.com/foo.png",
			Stars:       "2 stars",
			Description: model.NoDescription,
			Language:    model.NoLanguage,
			LastUpdate:  "2021-05-01 12:00:00",
		})
	})

	t.Run("location option", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				return newRepo(owner, name), nil
			},
		}
		srv := server.New(uc, server.WithLocation(time.FixedZone("JST", 9*60*60)))
		rec := serve(srv, http.MethodGet, "/api/repos/foo/bar", "")

		var view model.RepositoryView
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		gt.V(t, view.LastUpdate).Equal("2021-05-01 21:00:00")
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				return nil, goerr.Wrap(types.ErrNotFound, "failed to get repository")
			},
		}
		rec := serve(server.New(uc), http.MethodGet, "/api/repos/foo/missing", "")
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestHistory(t *testing.T) {
	uc := usecase.New(infra.New(infra.WithHistoryRepository(memory.NewHistoryRepository())))
	srv := server.New(uc)

	rec := serve(srv, http.MethodGet, "/api/history", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, strings.TrimSpace(rec.Body.String())).Equal("[]")

	for _, repo := range []*model.Repository{newRepo("a", "x"), newRepo("b", "y"), newRepo("a", "x")} {
		body := string(gt.R1(json.Marshal(repo)).NoError(t))
		rec = serve(srv, http.MethodPost, "/api/history", body)
		gt.V(t, rec.Code).Equal(http.StatusNoContent)
	}

	rec = serve(srv, http.MethodGet, "/api/history", "")
	var repos []*model.Repository
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repos))
	gt.A(t, repos).Length(2)
	gt.V(t, repos[0].FullName).Equal("a/x")
	gt.V(t, repos[1].FullName).Equal("b/y")

	rec = serve(srv, http.MethodPost, "/api/history", `{"name":"x"}`)
	gt.V(t, rec.Code).Equal(http.StatusBadRequest)

	rec = serve(srv, http.MethodPost, "/api/history", `{broken`)
	gt.V(t, rec.Code).Equal(http.StatusBadRequest)

	rec = serve(srv, http.MethodDelete, "/api/history", "")
	gt.V(t, rec.Code).Equal(http.StatusNoContent)

	rec = serve(srv, http.MethodGet, "/api/history", "")
	gt.V(t, strings.TrimSpace(rec.Body.String())).Equal("[]")
}

func TestHistoryStream(t *testing.T) {
	uc := usecase.New(infra.New(infra.WithHistoryRepository(memory.NewHistoryRepository())))
	gt.NoError(t, uc.RecordHistory(context.Background(), newRepo("a", "x")))

	ts := httptest.NewServer(server.New(uc).Mux())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := gt.R1(http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/history/stream", nil)).NoError(t)
	resp := gt.R1(http.DefaultClient.Do(req)).NoError(t)
	defer resp.Body.Close()
	gt.V(t, resp.StatusCode).Equal(http.StatusOK)
	gt.V(t, resp.Header.Get("Content-Type")).Equal("application/x-ndjson")

	lines := bufio.NewScanner(resp.Body)
	readLine := func() []*model.Repository {
		gt.True(t, lines.Scan())
		var repos []*model.Repository
		gt.NoError(t, json.Unmarshal(lines.Bytes(), &repos))
		return repos
	}

	repos := readLine()
	gt.A(t, repos).Length(1)
	gt.V(t, repos[0].FullName).Equal("a/x")

	gt.NoError(t, uc.RecordHistory(context.Background(), newRepo("b", "y")))
	repos = readLine()
	gt.A(t, repos).Length(2)
	gt.V(t, repos[0].FullName).Equal("b/y")

	gt.NoError(t, uc.ClearHistory(context.Background()))
	repos = readLine()
	gt.A(t, repos).Length(0)
}

func TestSignInRoutes(t *testing.T) {
	authURL := gt.R1(url.Parse("https://github.com/login/oauth/authorize?client_id=abc")).NoError(t)

	t.Run("sign in and callback", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			AuthorizeURLFunc: func() *url.URL { return authURL },
			SignInFunc: func(ctx context.Context, code string) (*model.Credential, error) {
				gt.V(t, code).Equal("abc")
				return &model.Credential{Token: "gho_xyz"}, nil
			},
		}
		signIn := flow.NewSignIn(uc)
		srv := server.New(uc, server.WithSignIn(signIn))
		gt.V(t, srv.SignIn()).Equal(signIn)

		rec := serve(srv, http.MethodGet, "/auth/signin", "")
		gt.V(t, rec.Code).Equal(http.StatusFound)
		gt.V(t, rec.Header().Get("Location")).Equal(authURL.String())

		rec = serve(srv, http.MethodGet, "/oauth/callback?code=abc", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, signIn.Status().State).Equal(model.SignInSignedIn)

		rec = serve(srv, http.MethodGet, "/auth/status", "")
		var status model.SignInStatus
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		gt.V(t, status.State).Equal(model.SignInSignedIn)
	})

	t.Run("callback without code", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			AuthorizeURLFunc: func() *url.URL { return authURL },
		}
		srv := server.New(uc)

		serve(srv, http.MethodGet, "/auth/signin", "")
		rec := serve(srv, http.MethodGet, "/oauth/callback", "")
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, srv.SignIn().Status().State).Equal(model.SignInFailed)
	})

	t.Run("callback before sign in", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		rec := serve(srv, http.MethodGet, "/oauth/callback?code=abc", "")
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("rejected exchange", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			AuthorizeURLFunc: func() *url.URL { return authURL },
			SignInFunc: func(ctx context.Context, code string) (*model.Credential, error) {
				return nil, goerr.Wrap(types.ErrAuth, "bad_verification_code")
			},
		}
		srv := server.New(uc)

		serve(srv, http.MethodGet, "/auth/signin", "")
		rec := serve(srv, http.MethodGet, "/oauth/callback?code=expired", "")
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
	})

	t.Run("stored token is reported as signed in", func(t *testing.T) {
		store := memory.NewCredentialStore()
		gt.NoError(t, store.PutCredential(context.Background(), &model.Credential{Token: "gho_stored"}))
		uc := usecase.New(infra.New(infra.WithCredentialStore(store)))
		srv := server.New(uc)

		rec := serve(srv, http.MethodGet, "/auth/status", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`"state":"signed_in"`)
		gt.V(t, srv.SignIn().Status().State).Equal(model.SignInSignedIn)
	})

	t.Run("no stored token stays idle", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithCredentialStore(memory.NewCredentialStore())))
		rec := serve(server.New(uc), http.MethodGet, "/auth/status", "")
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`"state":"idle"`)
	})

	t.Run("credential store failure", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LoadCredentialFunc: func(ctx context.Context) (*model.Credential, error) {
				return nil, goerr.New("disk error")
			},
		}
		rec := serve(server.New(uc), http.MethodGet, "/auth/status", "")
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})

	t.Run("OAuth not configured", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			AuthorizeURLFunc: func() *url.URL { return nil },
		}
		rec := serve(server.New(uc), http.MethodGet, "/auth/signin", "")
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}
