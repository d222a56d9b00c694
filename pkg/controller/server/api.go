package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/utils/errutil"
	"github.com/asaleem9/folio/pkg/utils/logging"
)

func listRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sortBy, err := model.ParseRepositorySortKey(r.URL.Query().Get("sort"))
		if err != nil {
			logging.From(r.Context()).Debug("rejecting sort key", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid sort parameter")
			return
		}

		query := model.RepositoryQuery{
			Language: r.URL.Query().Get("language"),
			SortBy:   sortBy,
		}

		repos, err := uc.ListRepositories(r.Context(), query)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list repositories", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch repositories")
			return
		}

		writeJSON(w, http.StatusOK, repos)
	}
}

func listRepositoryLanguages(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		languages, err := uc.ListRepositoryLanguages(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list repository languages", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch repositories")
			return
		}

		writeJSON(w, http.StatusOK, languages)
	}
}

func listArticles(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := uc.ListArticles(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list articles", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch articles")
			return
		}

		writeJSON(w, http.StatusOK, articles)
	}
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func sendContact(uc interfaces.UseCase, maxBodySize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg model.ContactMessage
		body := http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := json.NewDecoder(body).Decode(&msg); err != nil {
			logging.From(r.Context()).Debug("rejecting contact body", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := uc.SendContact(r.Context(), &msg); err != nil {
			switch {
			case errors.Is(err, model.ErrMissingContactFields):
				writeError(w, http.StatusBadRequest, "Missing required fields")
			case errors.Is(err, model.ErrInvalidEmail):
				writeError(w, http.StatusBadRequest, "Invalid email address")
			case errors.Is(err, types.ErrMailerNotConfigured):
				errutil.HandleError(r.Context(), "contact relay is not available", err)
				writeError(w, http.StatusInternalServerError, "Email service is not configured")
			default:
				errutil.HandleError(r.Context(), "fail to send contact message", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, contactResponse{
			Success: true,
			Message: "Message received successfully",
		})
	}
}
