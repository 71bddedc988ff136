package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/model"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
)

// maxRequestBody limits POST /api/history. A repository entry is far smaller.
const maxRequestBody = 1 << 20

func handleSearch(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := flow.NewSearch(r.Context(), uc)
		defer search.Close()

		if err := search.Submit(r.URL.Query().Get("q")); err != nil {
			handleError(w, r, "invalid search request", err)
			return
		}
		search.Wait()

		state, _ := search.State()
		switch state.Status {
		case model.SearchStatusLoaded:
			writeJSON(w, http.StatusOK, state.Result)
		case model.SearchStatusEmpty, model.SearchStatusFailed:
			handleError(w, r, "fail to search repositories", state.Err)
		default:
			// canceled by the client
			logging.From(r.Context()).Debug("search did not finish", "status", state.Status)
		}
	}
}

func handleGetRepository(uc interfaces.UseCase, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail := flow.NewDetail(uc, loc)
		defer detail.Close()

		view, err := detail.Load(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "name"))
		if err != nil {
			handleError(w, r, "fail to get repository", err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func handleListHistory(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := uc.ListHistory(r.Context())
		if err != nil {
			handleError(w, r, "fail to list history", err)
			return
		}
		if repos == nil {
			repos = []*model.Repository{}
		}

		writeJSON(w, http.StatusOK, repos)
	}
}

func handleRecordHistory(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var repo model.Repository
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
		if err := decoder.Decode(&repo); err != nil {
			handleError(w, r, "invalid history entry",
				goerr.Wrap(types.ErrValidationFailed, "fail to decode request body", goerr.V("cause", err.Error())))
			return
		}

		search := flow.NewSearch(r.Context(), uc)
		defer search.Close()

		if err := search.Select(r.Context(), &repo); err != nil {
			handleError(w, r, "fail to record history", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleClearHistory(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.ClearHistory(r.Context()); err != nil {
			handleError(w, r, "fail to clear history", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleStreamHistory writes the history as one JSON line now and one after every change
func handleStreamHistory(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ch, err := uc.WatchHistory(r.Context())
		if err != nil {
			handleError(w, r, "fail to watch history", err)
			return
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		w.WriteHeader(http.StatusOK)
		flusher, _ := w.(http.Flusher)
		encoder := json.NewEncoder(w)

		for repos := range ch {
			if repos == nil {
				repos = []*model.Repository{}
			}
			if err := encoder.Encode(repos); err != nil {
				logging.From(r.Context()).Debug("history stream closed", "error", err)
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}
}
