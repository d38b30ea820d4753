package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/logger"
	musecase "github.com/amirhossein-jamali/alert-processor/mocks/port/usecase"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()

	events := musecase.NewMockEventUseCase(t)
	users := musecase.NewMockUserUseCase(t)
	events.On("IngestEvent", mock.Anything, usecase.EventRequest{Type: "deposit", Amount: "1", UserID: 1, Timestamp: 1}).
		Return(&entity.AlertResponse{AlertCodes: []int{}, UserID: 1}, nil).Twice()
	users.On("GetUser", mock.Anything, uint64(1)).
		Return(&usecase.UserResponse{ID: 1, Name: "John Doe", Email: "john@example.com"}, nil).Once()
	events.On("RecentEvents", mock.Anything, uint64(1), 10).Return([]*entity.Event{}, nil).Once()

	router := NewRouter(log, Handlers{
		Event:  handler.NewEventHandler(events, log),
		User:   handler.NewUserHandler(users, events, 10, log),
		Health: handler.NewHealthHandler(okPinger{}, log),
	})

	body := `{"type":"deposit","amount":"1","user_id":1,"t":1}`
	for _, tc := range []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/event", body, http.StatusOK},
		{http.MethodPost, "/event/", body, http.StatusOK},
		{http.MethodGet, "/user/1", "", http.StatusOK},
		{http.MethodGet, "/user/1/events", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}
