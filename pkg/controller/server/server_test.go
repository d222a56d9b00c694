package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asaleem9/folio/pkg/controller/server"
	"github.com/asaleem9/folio/pkg/domain/mock"
	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func strPtr(s string) *string { return &s }

func serve(t *testing.T, srv *server.Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := serve(t, srv, http.MethodGet, "/health", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"status":"ok"}`)
	})

	t.Run("GET /metrics is served", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithMetricsHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("folio_up 1\n"))
		})))

		rec := serve(t, srv, http.MethodGet, "/metrics", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("folio_up 1\n")
	})

	t.Run("metrics route can be disabled", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithMetricsHandler(nil))
		rec := serve(t, srv, http.MethodGet, "/metrics", nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("GET /api/contact is not allowed", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		rec := serve(t, srv, http.MethodGet, "/api/contact", nil)
		gt.V(t, rec.Code).Equal(http.StatusMethodNotAllowed)
	})
}

func TestListRepositoriesHandler(t *testing.T) {
	t.Run("returns normalized records as JSON", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListRepositoriesFunc: func(ctx context.Context, query model.RepositoryQuery) ([]*model.Repository, error) {
				return []*model.Repository{
					{
						ID:              3,
						Name:            "folio",
						HTMLURL:         "https://github.com/asaleem9/folio",
						Language:        strPtr("Go"),
						StargazersCount: 5,
						UpdatedAt:       "2024-01-01T00:00:00Z",
						Topics:          []string{},
					},
				}, nil
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/api/github", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var got []map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		gt.A(t, got).Length(1)
		gt.V(t, got[0]["name"]).Equal("folio")
		gt.V(t, got[0]["homepage"]).Equal(nil)
		gt.V(t, got[0]["description"]).Equal(nil)
		gt.V(t, got[0]["topics"]).Equal([]any{})
		gt.V(t, got[0]["stargazers_count"]).Equal(float64(5))

		gt.A(t, mockUC.ListRepositoriesCalls()).Length(1)
		gt.V(t, mockUC.ListRepositoriesCalls()[0].Query).Equal(model.RepositoryQuery{SortBy: model.SortByUpdated})
	})

	t.Run("query parameters are passed through", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListRepositoriesFunc: func(ctx context.Context, query model.RepositoryQuery) ([]*model.Repository, error) {
				return []*model.Repository{}, nil
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/api/github?language=Go&sort=stars", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("[]")
		gt.V(t, mockUC.ListRepositoriesCalls()[0].Query).Equal(model.RepositoryQuery{
			Language: "Go",
			SortBy:   model.SortByStars,
		})
	})

	t.Run("unknown sort key is rejected", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/api/github?sort=size", nil)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, rec.Body.String()).Equal(`{"error":"Invalid sort parameter"}`)
		gt.A(t, mockUC.ListRepositoriesCalls()).Length(0)
	})

	t.Run("upstream failure returns generic error", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListRepositoriesFunc: func(ctx context.Context, query model.RepositoryQuery) ([]*model.Repository, error) {
				return nil, goerr.Wrap(types.ErrUpstream, "status 403", goerr.V("body", "rate limit exceeded"))
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/api/github", nil)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.V(t, rec.Body.String()).Equal(`{"error":"Failed to fetch repositories"}`)
	})

	t.Run("languages", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListRepositoryLanguagesFunc: func(ctx context.Context) ([]string, error) {
				return []string{"Go", "TypeScript"}, nil
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/api/github/languages", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`["Go","TypeScript"]`)
	})

	t.Run("languages failure", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListRepositoryLanguagesFunc: func(ctx context.Context) ([]string, error) {
				return nil, errors.New("boom")
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/api/github/languages", nil)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func TestListArticlesHandler(t *testing.T) {
	t.Run("returns articles as JSON", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListArticlesFunc: func(ctx context.Context) ([]*model.Article, error) {
				return []*model.Article{
					{
						Title:      "Shipping a roadmap",
						Link:       "https://medium.com/@alithetpm/shipping-a-roadmap-1",
						PubDate:    "Mon, 01 Jan 2024 10:00:00 GMT",
						Categories: []string{"roadmap", "roadmap"},
					},
				}, nil
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/api/medium", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`[{"title":"Shipping a roadmap","link":"https://medium.com/@alithetpm/shipping-a-roadmap-1","pubDate":"Mon, 01 Jan 2024 10:00:00 GMT","imageUrl":null,"categories":["roadmap","roadmap"]}]`)
	})

	t.Run("upstream failure returns generic error", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListArticlesFunc: func(ctx context.Context) ([]*model.Article, error) {
				return nil, goerr.Wrap(types.ErrUpstream, "status 500")
			},
		}
		srv := server.New(mockUC)

		rec := serve(t, srv, http.MethodGet, "/api/medium", nil)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.V(t, rec.Body.String()).Equal(`{"error":"Failed to fetch articles"}`)
	})
}

func TestSendContactHandler(t *testing.T) {
	validate := func(ctx context.Context, msg *model.ContactMessage) error {
		return msg.Validate()
	}

	testCases := []struct {
		name     string
		body     string
		sendErr  error
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			body:     `{"name":"Ada","email":"ada@example.com","message":"hello"}`,
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"message":"Message received successfully"}`,
		},
		{
			name:     "missing name",
			body:     `{"name":"","email":"a@b.com","message":"hi"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing required fields"}`,
		},
		{
			name:     "invalid email",
			body:     `{"name":"A","email":"not-an-email","message":"hello world"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid email address"}`,
		},
		{
			name:     "body is not JSON",
			body:     `name=A&email=a@b.com`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid request body"}`,
		},
		{
			name:     "body is a JSON array",
			body:     `[1,2,3]`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid request body"}`,
		},
		{
			name:     "mailer not configured",
			body:     `{"name":"A","email":"a@b.com","message":"hi"}`,
			sendErr:  goerr.Wrap(types.ErrMailerNotConfigured, "no mailer"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Email service is not configured"}`,
		},
		{
			name:     "mailer failure",
			body:     `{"name":"A","email":"a@b.com","message":"hi"}`,
			sendErr:  errors.New("resend: 500"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUC := &mock.UseCaseMock{
				SendContactFunc: func(ctx context.Context, msg *model.ContactMessage) error {
					if err := validate(ctx, msg); err != nil {
						return err
					}
					return tc.sendErr
				},
			}
			srv := server.New(mockUC)

			rec := serve(t, srv, http.MethodPost, "/api/contact", []byte(tc.body))
			gt.V(t, rec.Code).Equal(tc.wantCode)
			gt.V(t, rec.Body.String()).Equal(tc.wantBody)
		})
	}

	t.Run("oversized body is rejected", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC, server.WithMaxBodySize(32))

		body := `{"name":"A","email":"a@b.com","message":"` + strings.Repeat("x", 64) + `"}`
		rec := serve(t, srv, http.MethodPost, "/api/contact", []byte(body))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, mockUC.SendContactCalls()).Length(0)
	})
}
