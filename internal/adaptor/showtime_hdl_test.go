package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-reservation/internal/dto/request"
	"movie-reservation/internal/dto/response"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubShowtimeService struct {
	createFunc func(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	getFunc    func(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	updateFunc func(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) error
	deleteFunc func(ctx context.Context, showtimeID string) error
}

func (s *stubShowtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	return s.createFunc(ctx, req)
}

func (s *stubShowtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	return s.getFunc(ctx, showtimeID)
}

func (s *stubShowtimeService) UpdateShowtime(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) error {
	return s.updateFunc(ctx, showtimeID, req)
}

func (s *stubShowtimeService) DeleteShowtime(ctx context.Context, showtimeID string) error {
	return s.deleteFunc(ctx, showtimeID)
}

type notFoundErr struct{ msg string }

func (e *notFoundErr) Error() string { return e.msg }
func (e *notFoundErr) Unwrap() error { return usecase.ErrNotFound }

func showtimeRouter(service usecase.ShowtimeService) *chi.Mux {
	handler := NewShowtimeHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/showtimes", handler.CreateShowtime)
	r.Get("/api/showtimes/{id}", handler.GetShowtimeByID)
	r.Put("/api/showtimes/{id}", handler.UpdateShowtime)
	r.Delete("/api/showtimes/{id}", handler.DeleteShowtime)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func validShowtimeBody() string {
	return fmt.Sprintf(`{
		"movie_id": %q,
		"theater": "T1",
		"start_time": "2026-03-01T10:00:00Z",
		"end_time": "2026-03-01T12:00:00Z",
		"price": 12.5
	}`, uuid.NewString())
}

func TestShowtimeHandler_CreateShowtime(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		id := uuid.NewString()
		router := showtimeRouter(&stubShowtimeService{
			createFunc: func(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
				return &response.ShowtimeResponse{ID: id, Theater: req.Theater}, nil
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/showtimes", strings.NewReader(validShowtimeBody())))

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Status)
		assert.Equal(t, "Showtime created successfully", resp.Message)
	})

	t.Run("overlap maps to 409", func(t *testing.T) {
		router := showtimeRouter(&stubShowtimeService{
			createFunc: func(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
				return nil, usecase.ErrShowtimeOverlap
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/showtimes", strings.NewReader(validShowtimeBody())))

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Status)
		assert.Equal(t, "Showtime overlaps with existing showtime", resp.Message)
	})

	t.Run("invalid range maps to 400", func(t *testing.T) {
		router := showtimeRouter(&stubShowtimeService{
			createFunc: func(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
				return nil, usecase.ErrStartNotBeforeEnd
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/showtimes", strings.NewReader(validShowtimeBody())))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Start time must be before end time", decodeResponse(t, rec).Message)
	})

	t.Run("validation failure short-circuits the service", func(t *testing.T) {
		called := false
		router := showtimeRouter(&stubShowtimeService{
			createFunc: func(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
				called = true
				return nil, nil
			},
		})

		body := `{"movie_id": "nope", "theater": "T1", "start_time": "yesterday", "end_time": "later"}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/showtimes", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})
}

func TestShowtimeHandler_GetShowtimeByID(t *testing.T) {
	t.Run("unknown id maps to 404", func(t *testing.T) {
		unknownID := uuid.NewString()
		router := showtimeRouter(&stubShowtimeService{
			getFunc: func(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
				return nil, &notFoundErr{msg: fmt.Sprintf("Showtime with ID %s not found", showtimeID)}
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/showtimes/"+unknownID, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, fmt.Sprintf("Showtime with ID %s not found", unknownID), resp.Message)
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		router := showtimeRouter(&stubShowtimeService{
			getFunc: func(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
				return nil, fmt.Errorf("find showtime: connection reset")
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/showtimes/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeResponse(t, rec).Message)
	})
}

func TestShowtimeHandler_UpdateShowtime(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		var gotID string
		router := showtimeRouter(&stubShowtimeService{
			updateFunc: func(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) error {
				gotID = showtimeID
				return nil
			},
		})

		id := uuid.NewString()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/showtimes/"+id, strings.NewReader(`{"price": 15}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, gotID)
	})

	t.Run("overlap maps to 409", func(t *testing.T) {
		router := showtimeRouter(&stubShowtimeService{
			updateFunc: func(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) error {
				return usecase.ErrShowtimeOverlap
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/showtimes/"+uuid.NewString(), strings.NewReader(`{"theater": "T2"}`)))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestShowtimeHandler_DeleteShowtime(t *testing.T) {
	router := showtimeRouter(&stubShowtimeService{
		deleteFunc: func(ctx context.Context, showtimeID string) error {
			return &notFoundErr{msg: fmt.Sprintf("Showtime with ID %s not found", showtimeID)}
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/showtimes/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
