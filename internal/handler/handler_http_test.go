package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"playlisttracker/internal/domain"
	"playlisttracker/internal/handler"
	"playlisttracker/internal/handler/mocks"
	"playlisttracker/internal/playlist"
	"playlisttracker/internal/service"
	"playlisttracker/internal/validation"
)

const playlistRef = "https://www.youtube.com/playlist?list=PL2"

func newTestHandler(t *testing.T) (*handler.Handler, *mocks.MockURLService, *mocks.MockRequestValidator) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := mocks.NewMockURLService(t)
	val := mocks.NewMockRequestValidator(t)
	h := handler.New(svc, val, logger)
	return h, svc, val
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func boolPtr(b bool) *bool { return &b }

// AddURL tests

func TestAddURL_Playlist(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL(playlistRef).Return(nil)
	svc.EXPECT().AddPlaylist(mock.Anything, playlistRef).
		Return(&domain.AddPlaylistResponse{Playlist: playlistRef, Added: 2}, nil)

	c, rec := newContext(http.MethodPost, "/urls/playlist", `{"url":"`+playlistRef+`","isPlaylist":true}`)

	err := h.AddURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Added 2 videos from playlist.", rec.Body.String())
}

func TestAddURL_SingleVideo(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateURL("https://youtu.be/a").Return(nil)
	svc.EXPECT().AddVideo(mock.Anything, "https://youtu.be/a").Return(&domain.URLResponse{
		ID:        "Uk9xaB",
		URL:       "https://youtu.be/a",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil)

	c, rec := newContext(http.MethodPost, "/urls/playlist", `{"url":"https://youtu.be/a","isPlaylist":false}`)

	err := h.AddURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":"Uk9xaB","url":"https://youtu.be/a","playlist":null,"completed":false,"created_at":"2024-01-02T03:04:05Z"}`,
		rec.Body.String())
}

func TestAddURL_InvalidJSON(t *testing.T) {
	h, _, _ := newTestHandler(t)

	c, rec := newContext(http.MethodPost, "/urls/playlist", `invalid json`)

	err := h.AddURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body.", rec.Body.String())
}

func TestAddURL_EmptyPlaylistURL(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL("").Return(validation.ErrEmptyPlaylistURL)

	c, rec := newContext(http.MethodPost, "/urls/playlist", `{"url":"","isPlaylist":true}`)

	err := h.AddURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Playlist URL is required.", rec.Body.String())
}

func TestAddURL_ExpansionFailed(t *testing.T) {
	h, svc, val := newTestHandler(t)

	cause := &playlist.ExpansionError{PlaylistID: "PL2", Page: 2, Collected: 50, Err: errors.New("quotaExceeded")}

	val.EXPECT().ValidatePlaylistURL(playlistRef).Return(nil)
	svc.EXPECT().AddPlaylist(mock.Anything, playlistRef).
		Return(nil, errors.Join(service.ErrExpansionFailed, cause))

	c, rec := newContext(http.MethodPost, "/urls/playlist", `{"url":"`+playlistRef+`","isPlaylist":true}`)

	err := h.AddURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Error expanding playlist: "))
	assert.Contains(t, rec.Body.String(), "quotaExceeded")
}

func TestAddURL_InvalidPlaylistFromService(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL("PL2").Return(nil)
	svc.EXPECT().AddPlaylist(mock.Anything, "PL2").Return(nil, service.ErrInvalidPlaylist)

	c, rec := newContext(http.MethodPost, "/urls/playlist", `{"url":"PL2","isPlaylist":true}`)

	err := h.AddURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddURL_StorageError(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL("PL2").Return(nil)
	svc.EXPECT().AddPlaylist(mock.Anything, "PL2").Return(nil, errors.New("connection reset"))

	c, rec := newContext(http.MethodPost, "/urls/playlist", `{"url":"PL2","isPlaylist":true}`)

	err := h.AddURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error storing video URLs: connection reset", rec.Body.String())
}

// CreateURL tests

func TestCreateURL_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateURL("https://youtu.be/a").Return(nil)
	svc.EXPECT().AddVideo(mock.Anything, "https://youtu.be/a").Return(&domain.URLResponse{ID: "abc123", URL: "https://youtu.be/a"}, nil)

	c, rec := newContext(http.MethodPost, "/urls", `{"url":"https://youtu.be/a"}`)

	err := h.CreateURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"abc123"`)
}

func TestCreateURL_ValidationError(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().ValidateURL("javascript:alert(1)").Return(validation.ErrUnsafeProtocol)

	c, rec := newContext(http.MethodPost, "/urls", `{"url":"javascript:alert(1)"}`)

	err := h.CreateURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "URL protocol not allowed.", rec.Body.String())
}

func TestCreateURL_ServiceError(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateURL("v1").Return(nil)
	svc.EXPECT().AddVideo(mock.Anything, "v1").Return(nil, errors.New("db error"))

	c, rec := newContext(http.MethodPost, "/urls", `{"url":"v1"}`)

	err := h.CreateURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "db error")
}

// ListPlaylist tests

func TestListPlaylist_Success(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	group := "PL2"
	svc.EXPECT().ListPlaylist(mock.Anything, "PL2").Return([]domain.URLResponse{
		{ID: "a1", URL: "a", Playlist: &group},
		{ID: "b1", URL: "b", Playlist: &group},
	}, nil)

	c, rec := newContext(http.MethodGet, "/urls/playlist?playlistUrl=PL2", "")

	err := h.ListPlaylist(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"a"`)
	assert.Contains(t, rec.Body.String(), `"playlist":"PL2"`)
}

func TestListPlaylist_MissingQuery(t *testing.T) {
	h, _, _ := newTestHandler(t)

	c, rec := newContext(http.MethodGet, "/urls/playlist", "")

	err := h.ListPlaylist(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Playlist URL is required.", rec.Body.String())
}

func TestListPlaylist_ServiceError(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().ListPlaylist(mock.Anything, "PL2").Return(nil, errors.New("db error"))

	c, rec := newContext(http.MethodGet, "/urls/playlist?playlistUrl=PL2", "")

	err := h.ListPlaylist(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// SetVideoCompleted tests

func TestSetVideoCompleted_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateURL("a").Return(nil)
	svc.EXPECT().SetVideoCompleted(mock.Anything, "a", true).Return(nil)

	c, rec := newContext(http.MethodPut, "/urls/playlist", `{"videoUrl":"a","completed":true}`)

	err := h.SetVideoCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Video completion status updated.", rec.Body.String())
}

func TestSetVideoCompleted_MissingVideoURL(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().ValidateURL("").Return(validation.ErrEmptyURL)

	c, rec := newContext(http.MethodPut, "/urls/playlist", `{"completed":true}`)

	err := h.SetVideoCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Video URL is required.", rec.Body.String())
}

func TestSetVideoCompleted_MissingCompleted(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().ValidateURL("a").Return(nil)

	c, rec := newContext(http.MethodPut, "/urls/playlist", `{"videoUrl":"a"}`)

	err := h.SetVideoCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Completed flag is required.", rec.Body.String())
}

func TestSetVideoCompleted_ServiceError(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateURL("a").Return(nil)
	svc.EXPECT().SetVideoCompleted(mock.Anything, "a", false).Return(errors.New("db error"))

	c, rec := newContext(http.MethodPut, "/urls/playlist", `{"videoUrl":"a","completed":false}`)

	err := h.SetVideoCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error updating completion status: db error", rec.Body.String())
}

// DeleteVideo tests

func TestDeleteVideo_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateURL("a").Return(nil)
	svc.EXPECT().DeleteVideo(mock.Anything, "a").Return(nil)

	c, rec := newContext(http.MethodDelete, "/urls/playlist", `{"videoUrl":"a"}`)

	err := h.DeleteVideo(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Video removed.", rec.Body.String())
}

func TestDeleteVideo_MissingVideoURL(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().ValidateURL("").Return(validation.ErrEmptyURL)

	c, rec := newContext(http.MethodDelete, "/urls/playlist", `{}`)

	err := h.DeleteVideo(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Video URL is required.", rec.Body.String())
}

// Playlist group tests

func TestListPlaylists_Success(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().ListPlaylists(mock.Anything).Return([]string{"PL1", "PL2"}, nil)

	c, rec := newContext(http.MethodGet, "/urls/playlist/all", "")

	err := h.ListPlaylists(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["PL1","PL2"]`, rec.Body.String())
}

func TestListPlaylists_EmptyIsArray(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().ListPlaylists(mock.Anything).Return(nil, nil)

	c, rec := newContext(http.MethodGet, "/urls/playlist/all", "")

	err := h.ListPlaylists(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSetPlaylistCompleted_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL("PL2").Return(nil)
	svc.EXPECT().SetPlaylistCompleted(mock.Anything, "PL2", true).Return(nil)

	c, rec := newContext(http.MethodPut, "/urls/playlist/all", `{"playlistUrl":"PL2","completed":true}`)

	err := h.SetPlaylistCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Playlist completion status updated.", rec.Body.String())
}

func TestSetPlaylistCompleted_MissingPlaylistURL(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL("").Return(validation.ErrEmptyPlaylistURL)

	c, rec := newContext(http.MethodPut, "/urls/playlist/all", `{"completed":true}`)

	err := h.SetPlaylistCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Playlist URL is required.", rec.Body.String())
}

func TestSetPlaylistCompleted_MissingCompleted(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL("PL2").Return(nil)

	c, rec := newContext(http.MethodPut, "/urls/playlist/all", `{"playlistUrl":"PL2"}`)

	err := h.SetPlaylistCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePlaylist_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL("PL2").Return(nil)
	svc.EXPECT().DeletePlaylist(mock.Anything, "PL2").Return(nil)

	c, rec := newContext(http.MethodDelete, "/urls/playlist/all", `{"playlistUrl":"PL2"}`)

	err := h.DeletePlaylist(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Playlist removed.", rec.Body.String())
}

func TestDeletePlaylist_ServiceError(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidatePlaylistURL("PL2").Return(nil)
	svc.EXPECT().DeletePlaylist(mock.Anything, "PL2").Return(errors.New("db error"))

	c, rec := newContext(http.MethodDelete, "/urls/playlist/all", `{"playlistUrl":"PL2"}`)

	err := h.DeletePlaylist(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error removing URLs: db error", rec.Body.String())
}

// By-id tests

func TestListURLs_Success(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().ListURLs(mock.Anything).Return([]domain.URLResponse{{ID: "a1", URL: "a"}}, nil)

	c, rec := newContext(http.MethodGet, "/urls", "")

	err := h.ListURLs(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"a1"`)
}

func TestGetURL(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"not found", service.ErrURLNotFound, http.StatusNotFound},
		{"invalid id", service.ErrInvalidID, http.StatusBadRequest},
		{"storage error", errors.New("db error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newTestHandler(t)

			var resp *domain.URLResponse
			if tt.svcErr == nil {
				resp = &domain.URLResponse{ID: "abc123", URL: "a"}
			}
			svc.EXPECT().GetURL(mock.Anything, "abc123").Return(resp, tt.svcErr)

			c, rec := newContext(http.MethodGet, "/urls/abc123", "")
			c.SetParamNames("id")
			c.SetParamValues("abc123")

			err := h.GetURL(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSetURLCompleted_Success(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().SetURLCompleted(mock.Anything, "abc123", true).Return(nil)

	c, rec := newContext(http.MethodPut, "/urls/abc123", `{"completed":true}`)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	err := h.SetURLCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "URL completion status updated.", rec.Body.String())
}

func TestSetURLCompleted_NotFound(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().SetURLCompleted(mock.Anything, "abc123", false).Return(service.ErrURLNotFound)

	c, rec := newContext(http.MethodPut, "/urls/abc123", `{"completed":false}`)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	err := h.SetURLCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "URL not found.", rec.Body.String())
}

func TestSetURLCompleted_MissingCompleted(t *testing.T) {
	h, _, _ := newTestHandler(t)

	c, rec := newContext(http.MethodPut, "/urls/abc123", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	err := h.SetURLCompleted(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteURL_Success(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().DeleteURL(mock.Anything, "abc123").Return(nil)

	c, rec := newContext(http.MethodDelete, "/urls/abc123", "")
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	err := h.DeleteURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "URL removed.", rec.Body.String())
}

func TestDeleteURL_NotFound(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().DeleteURL(mock.Anything, "abc123").Return(service.ErrURLNotFound)

	c, rec := newContext(http.MethodDelete, "/urls/abc123", "")
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	err := h.DeleteURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)

	c, rec := newContext(http.MethodGet, "/health", "")

	err := h.Health(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
