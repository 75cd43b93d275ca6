package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"playlisttracker/internal/domain"
	"playlisttracker/internal/service"
	"playlisttracker/internal/validation"
)

const (
	msgInvalidBody         = "Invalid request body."
	msgVideoURLRequired    = "Video URL is required."
	msgPlaylistURLRequired = "Playlist URL is required."
	msgCompletedRequired   = "Completed flag is required."
	msgInvalidURL          = "Invalid URL format."
	msgUnsafeURL           = "URL protocol not allowed."
	msgURLTooLong          = "URL exceeds maximum length."
	msgInvalidPlaylistURL  = "Playlist URL does not contain a playlist id."
	msgValidationFailed    = "Validation failed."
	msgInvalidID           = "Invalid id."
	msgURLNotFound         = "URL not found."
	msgVideoUpdated        = "Video completion status updated."
	msgVideoRemoved        = "Video removed."
	msgPlaylistUpdated     = "Playlist completion status updated."
	msgPlaylistRemoved     = "Playlist removed."
	msgURLUpdated          = "URL completion status updated."
	msgURLRemoved          = "URL removed."
	msgErrStoring          = "Error storing video URLs"
	msgErrExpanding        = "Error expanding playlist"
	msgErrListing          = "Error listing URLs"
	msgErrUpdating         = "Error updating completion status"
	msgErrRemoving         = "Error removing URLs"
)

var respHealthOK = map[string]string{"status": "ok"}

type Handler struct {
	urlService URLService
	validator  RequestValidator
	logger     *slog.Logger
}

func New(urlService URLService, validator RequestValidator, logger *slog.Logger) *Handler {
	return &Handler{
		urlService: urlService,
		validator:  validator,
		logger:     logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)

	e.POST("/urls/playlist", h.AddURL)
	e.GET("/urls/playlist", h.ListPlaylist)
	e.PUT("/urls/playlist", h.SetVideoCompleted)
	e.DELETE("/urls/playlist", h.DeleteVideo)

	e.GET("/urls/playlist/all", h.ListPlaylists)
	e.PUT("/urls/playlist/all", h.SetPlaylistCompleted)
	e.DELETE("/urls/playlist/all", h.DeletePlaylist)

	e.GET("/urls", h.ListURLs)
	e.POST("/urls", h.CreateURL)
	e.GET("/urls/:id", h.GetURL)
	e.PUT("/urls/:id", h.SetURLCompleted)
	e.DELETE("/urls/:id", h.DeleteURL)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

// AddURL stores a single video, or expands a playlist and stores all of its
// videos grouped under the submitted reference.
func (h *Handler) AddURL(c echo.Context) error {
	var req domain.AddURLRequest
	if err := h.bind(c, &req); err != nil {
		return c.String(http.StatusBadRequest, msgInvalidBody)
	}

	if !req.IsPlaylist {
		return h.addVideo(c, req.URL)
	}

	if err := h.validator.ValidatePlaylistURL(req.URL); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.urlService.AddPlaylist(c.Request().Context(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlaylist):
			return c.String(http.StatusBadRequest, msgInvalidPlaylistURL)
		case errors.Is(err, service.ErrExpansionFailed):
			return h.serverError(c, msgErrExpanding, err)
		default:
			return h.serverError(c, msgErrStoring, err)
		}
	}

	return c.String(http.StatusOK, fmt.Sprintf("Added %d videos from playlist.", resp.Added))
}

func (h *Handler) CreateURL(c echo.Context) error {
	var req domain.AddURLRequest
	if err := h.bind(c, &req); err != nil {
		return c.String(http.StatusBadRequest, msgInvalidBody)
	}
	return h.addVideo(c, req.URL)
}

func (h *Handler) addVideo(c echo.Context, location string) error {
	if err := h.validator.ValidateURL(location); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.urlService.AddVideo(c.Request().Context(), location)
	if err != nil {
		return h.serverError(c, msgErrStoring, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListPlaylist(c echo.Context) error {
	reference := c.QueryParam("playlistUrl")
	if reference == "" {
		return c.String(http.StatusBadRequest, msgPlaylistURLRequired)
	}

	urls, err := h.urlService.ListPlaylist(c.Request().Context(), reference)
	if err != nil {
		return h.serverError(c, msgErrListing, err)
	}

	return c.JSON(http.StatusOK, urls)
}

func (h *Handler) SetVideoCompleted(c echo.Context) error {
	var req domain.VideoCompletedRequest
	if err := h.bind(c, &req); err != nil {
		return c.String(http.StatusBadRequest, msgInvalidBody)
	}

	if err := h.validator.ValidateURL(req.VideoURL); err != nil {
		return h.handleValidationError(c, err)
	}
	if req.Completed == nil {
		return c.String(http.StatusBadRequest, msgCompletedRequired)
	}

	if err := h.urlService.SetVideoCompleted(c.Request().Context(), req.VideoURL, *req.Completed); err != nil {
		return h.serverError(c, msgErrUpdating, err)
	}

	return c.String(http.StatusOK, msgVideoUpdated)
}

func (h *Handler) DeleteVideo(c echo.Context) error {
	var req domain.VideoRequest
	if err := h.bind(c, &req); err != nil {
		return c.String(http.StatusBadRequest, msgInvalidBody)
	}

	if err := h.validator.ValidateURL(req.VideoURL); err != nil {
		return h.handleValidationError(c, err)
	}

	if err := h.urlService.DeleteVideo(c.Request().Context(), req.VideoURL); err != nil {
		return h.serverError(c, msgErrRemoving, err)
	}

	return c.String(http.StatusOK, msgVideoRemoved)
}

func (h *Handler) ListPlaylists(c echo.Context) error {
	playlists, err := h.urlService.ListPlaylists(c.Request().Context())
	if err != nil {
		return h.serverError(c, msgErrListing, err)
	}
	if playlists == nil {
		playlists = []string{}
	}

	return c.JSON(http.StatusOK, playlists)
}

func (h *Handler) SetPlaylistCompleted(c echo.Context) error {
	var req domain.PlaylistCompletedRequest
	if err := h.bind(c, &req); err != nil {
		return c.String(http.StatusBadRequest, msgInvalidBody)
	}

	if err := h.validator.ValidatePlaylistURL(req.PlaylistURL); err != nil {
		return h.handleValidationError(c, err)
	}
	if req.Completed == nil {
		return c.String(http.StatusBadRequest, msgCompletedRequired)
	}

	if err := h.urlService.SetPlaylistCompleted(c.Request().Context(), req.PlaylistURL, *req.Completed); err != nil {
		return h.serverError(c, msgErrUpdating, err)
	}

	return c.String(http.StatusOK, msgPlaylistUpdated)
}

func (h *Handler) DeletePlaylist(c echo.Context) error {
	var req domain.PlaylistRequest
	if err := h.bind(c, &req); err != nil {
		return c.String(http.StatusBadRequest, msgInvalidBody)
	}

	if err := h.validator.ValidatePlaylistURL(req.PlaylistURL); err != nil {
		return h.handleValidationError(c, err)
	}

	if err := h.urlService.DeletePlaylist(c.Request().Context(), req.PlaylistURL); err != nil {
		return h.serverError(c, msgErrRemoving, err)
	}

	return c.String(http.StatusOK, msgPlaylistRemoved)
}

func (h *Handler) ListURLs(c echo.Context) error {
	urls, err := h.urlService.ListURLs(c.Request().Context())
	if err != nil {
		return h.serverError(c, msgErrListing, err)
	}
	return c.JSON(http.StatusOK, urls)
}

func (h *Handler) GetURL(c echo.Context) error {
	resp, err := h.urlService.GetURL(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleIDError(c, err, msgErrListing)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetURLCompleted(c echo.Context) error {
	var req domain.CompletedRequest
	if err := h.bind(c, &req); err != nil {
		return c.String(http.StatusBadRequest, msgInvalidBody)
	}
	if req.Completed == nil {
		return c.String(http.StatusBadRequest, msgCompletedRequired)
	}

	if err := h.urlService.SetURLCompleted(c.Request().Context(), c.Param("id"), *req.Completed); err != nil {
		return h.handleIDError(c, err, msgErrUpdating)
	}

	return c.String(http.StatusOK, msgURLUpdated)
}

func (h *Handler) DeleteURL(c echo.Context) error {
	if err := h.urlService.DeleteURL(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleIDError(c, err, msgErrRemoving)
	}
	return c.String(http.StatusOK, msgURLRemoved)
}

// bind decodes only the JSON body so that route and query parameters never
// leak into request structs.
func (h *Handler) bind(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (h *Handler) serverError(c echo.Context, msg string, err error) error {
	h.logger.Error(msg, slog.String("error", err.Error()))
	return c.String(http.StatusInternalServerError, fmt.Sprintf("%s: %s", msg, err.Error()))
}

func (h *Handler) handleIDError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		return c.String(http.StatusBadRequest, msgInvalidID)
	case errors.Is(err, service.ErrURLNotFound):
		return c.String(http.StatusNotFound, msgURLNotFound)
	default:
		return h.serverError(c, msg, err)
	}
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return c.String(http.StatusBadRequest, msgVideoURLRequired)
	case errors.Is(err, validation.ErrEmptyPlaylistURL):
		return c.String(http.StatusBadRequest, msgPlaylistURLRequired)
	case errors.Is(err, validation.ErrInvalidURLFormat):
		return c.String(http.StatusBadRequest, msgInvalidURL)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.String(http.StatusBadRequest, msgUnsafeURL)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.String(http.StatusBadRequest, msgURLTooLong)
	case errors.Is(err, validation.ErrInvalidPlaylistURL):
		return c.String(http.StatusBadRequest, msgInvalidPlaylistURL)
	default:
		return c.String(http.StatusBadRequest, msgValidationFailed)
	}
}
