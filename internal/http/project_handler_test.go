package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/domain/mocks"
	"github.com/rllL1/portfolio/pkg/logger"
)

func setupProjectHandler(t *testing.T) (*mocks.MockProjectService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := mocks.NewMockProjectService(ctrl)
	handler := NewProjectHandler(svc, newTestAuth(), logger.NewTestLogger(t))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return svc, mux
}

func TestProjectHandler_List(t *testing.T) {
	svc, mux := setupProjectHandler(t)
	token := adminToken(t)

	t.Run("requires auth", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodGet, "/api/projects.list", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/projects.list", nil, token)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		svc.EXPECT().ListProjects(gomock.Any()).Return([]*domain.Project{
			{ID: "p1", Title: "Library", TechStack: domain.StringList{"PHP"}},
		}, nil)

		w := doRequest(t, mux, http.MethodGet, "/api/projects.list", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		projects := decodeBody(t, w)["projects"].([]interface{})
		require.Len(t, projects, 1)
		assert.Equal(t, "Library", projects[0].(map[string]interface{})["title"])
	})

	t.Run("service failure", func(t *testing.T) {
		svc.EXPECT().ListProjects(gomock.Any()).Return(nil, errors.New("db down"))

		w := doRequest(t, mux, http.MethodGet, "/api/projects.list", nil, token)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to load projects", decodeBody(t, w)["error"])
	})
}

func TestProjectHandler_Create(t *testing.T) {
	svc, mux := setupProjectHandler(t)
	token := adminToken(t)

	t.Run("comma separated tech stack", func(t *testing.T) {
		svc.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Project) (*domain.Project, error) {
			assert.Equal(t, domain.StringList{"Next.js", "Supabase"}, p.TechStack)
			assert.Nil(t, p.LiveURL)
			assert.Equal(t, domain.AppendOrder, p.OrderIndex)
			p.ID = "new-id"
			return p, nil
		})

		w := doRequest(t, mux, http.MethodPost, "/api/projects.create",
			`{"title":"Docs Report","tech_stack":"Next.js, Supabase, ","live_url":""}`, token)
		require.Equal(t, http.StatusCreated, w.Code)
		project := decodeBody(t, w)["project"].(map[string]interface{})
		assert.Equal(t, "new-id", project["id"])
	})

	t.Run("invalid body", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/projects.create", `{"title":`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/projects.create", `{"title":"  "}`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "title is required", decodeBody(t, w)["error"])
	})
}

func TestProjectHandler_UpdateDeleteReorder(t *testing.T) {
	svc, mux := setupProjectHandler(t)
	token := adminToken(t)

	t.Run("update requires id", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/projects.update", `{"title":"x"}`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update missing row", func(t *testing.T) {
		svc.EXPECT().UpdateProject(gomock.Any(), gomock.Any()).Return(nil, domain.NewNotFound("project", "p9"))

		w := doRequest(t, mux, http.MethodPost, "/api/projects.update", `{"id":"p9","title":"x"}`, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc.EXPECT().DeleteProject(gomock.Any(), "p1").Return(nil)

		w := doRequest(t, mux, http.MethodPost, "/api/projects.delete", map[string]string{"id": "p1"}, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["success"])
	})

	t.Run("reorder rejects duplicates", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/projects.reorder", `{"ids":["a","a"]}`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reorder", func(t *testing.T) {
		svc.EXPECT().ReorderProjects(gomock.Any(), []string{"b", "a"}).Return(nil)

		w := doRequest(t, mux, http.MethodPost, "/api/projects.reorder", `{"ids":["b","a"]}`, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProjectHandler_Preview(t *testing.T) {
	svc, mux := setupProjectHandler(t)
	token := adminToken(t)

	t.Run("missing url", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodGet, "/api/projects.preview", nil, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		svc.EXPECT().PreviewLink(gomock.Any(), "https://example.com").
			Return(&domain.LinkPreview{URL: "https://example.com", Title: "Example"}, nil)

		w := doRequest(t, mux, http.MethodGet, "/api/projects.preview?url=https://example.com", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Example", decodeBody(t, w)["preview"].(map[string]interface{})["title"])
	})

	t.Run("upstream failure", func(t *testing.T) {
		svc.EXPECT().PreviewLink(gomock.Any(), gomock.Any()).
			Return(nil, &domain.ErrUpstreamFailed{Provider: "link preview", Err: errors.New("timeout")})

		w := doRequest(t, mux, http.MethodGet, "/api/projects.preview?url=https://slow.example", nil, token)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
