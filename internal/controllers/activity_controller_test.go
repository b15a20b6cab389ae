package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitaplan/internal/controllers"
	"vitaplan/internal/mocks"
	"vitaplan/internal/models"
	"vitaplan/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupControllerWithMock() (*controllers.ActivityController, *mocks.MockActivityRepository) {
	mockRepo := new(mocks.MockActivityRepository)
	controller := controllers.NewActivityController(mockRepo)
	return controller, mockRepo
}

func addAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"title":                 "Run",
		"category":              "workout",
		"date":                  "2024-06-01",
		"start_time":            "07:00",
		"end_time":              "07:30",
		"reminder_enabled":      true,
		"reminder_lead_minutes": 15,
	}
}

func storedActivity(userID uint) *models.Activity {
	return &models.Activity{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Run",
		Category:  models.CategoryWorkout,
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		StartTime: "07:00",
		EndTime:   "07:30",
		Status:    models.StatusPending,
	}
}

func TestCreateActivity(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockActivityRepository)
		expectedStatus int
		expectedMsg    string
		wantFieldErr   string
	}{
		{
			name:        "successful creation",
			requestBody: validBody(),
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("Create", mock.AnythingOfType("*models.Activity")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Activity created successfully",
		},
		{
			name: "missing title",
			requestBody: func() map[string]interface{} {
				b := validBody()
				b["title"] = ""
				return b
			}(),
			setupMock:      func(m *mocks.MockActivityRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
			wantFieldErr:   "title",
		},
		{
			name: "end before start",
			requestBody: func() map[string]interface{} {
				b := validBody()
				b["start_time"] = "08:00"
				b["end_time"] = "07:30"
				return b
			}(),
			setupMock:      func(m *mocks.MockActivityRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
			wantFieldErr:   "end_time",
		},
		{
			name:           "invalid JSON",
			requestBody:    nil,
			setupMock:      func(m *mocks.MockActivityRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:        "repository error",
			requestBody: validBody(),
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("Create", mock.AnythingOfType("*models.Activity")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create activity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/activities", controller.CreateActivity)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest("POST", "/activities", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)
			if tt.wantFieldErr != "" {
				fieldErrs, ok := response["errors"].(map[string]interface{})
				assert.True(t, ok, "validation failures carry a field-keyed error map")
				assert.Contains(t, fieldErrs, tt.wantFieldErr)
			}

			// On validation failure no write may happen.
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateActivityUnauthorized(t *testing.T) {
	controller, _ := setupControllerWithMock()
	router := setupTestRouter()
	router.POST("/activities", controller.CreateActivity)

	body, _ := json.Marshal(validBody())
	req := httptest.NewRequest("POST", "/activities", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListActivitiesFlat(t *testing.T) {
	controller, mockRepo := setupControllerWithMock()
	mockRepo.On("FindAllByUserID", uint(1)).Return([]models.Activity{*storedActivity(1)}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/activities", controller.ListActivities)

	req := httptest.NewRequest("GET", "/activities", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "list", response["view"])
	assert.Len(t, response["data"], 1)
	mockRepo.AssertExpectations(t)
}

func TestListActivitiesInvalidCategory(t *testing.T) {
	controller, _ := setupControllerWithMock()
	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/activities", controller.ListActivities)

	req := httptest.NewRequest("GET", "/activities?category=gaming", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListActivitiesTimeline(t *testing.T) {
	controller, mockRepo := setupControllerWithMock()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	mockRepo.On("FindByUserIDAndDate", uint(1), date).
		Return([]models.Activity{*storedActivity(1)}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/activities", controller.ListActivities)

	req := httptest.NewRequest("GET", "/activities?date=2024-06-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "timeline", response["view"])
	assert.Equal(t, "2024-06-01", response["date"])
	mockRepo.AssertExpectations(t)
}

func TestListActivitiesWeeklyGrid(t *testing.T) {
	controller, mockRepo := setupControllerWithMock()
	// 2024-06-05 is a Wednesday: Sun 2 .. Sat 8.
	weekStart := time.Date(2024, 6, 2, 0, 0, 0, 0, time.Local)
	weekEnd := time.Date(2024, 6, 8, 0, 0, 0, 0, time.Local)
	mockRepo.On("FindByUserIDAndDateRange", uint(1), weekStart, weekEnd).
		Return([]models.Activity{}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/activities", controller.ListActivities)

	req := httptest.NewRequest("GET", "/activities?week_start=2024-06-05", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "weekly_grid", response["view"])
	assert.Equal(t, "2024-06-02", response["week_start"])

	grid, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Len(t, grid, 7, "every day of the week present even when empty")
	mockRepo.AssertExpectations(t)
}

func TestGetActivityByID(t *testing.T) {
	activity := storedActivity(1)

	t.Run("found", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("FindByID", activity.ID, uint(1)).Return(activity, nil)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.GET("/activities/:id", controller.GetActivityByID)

		req := httptest.NewRequest("GET", "/activities/"+activity.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("FindByID", activity.ID, uint(1)).Return(nil, repository.ErrNotFound)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.GET("/activities/:id", controller.GetActivityByID)

		req := httptest.NewRequest("GET", "/activities/"+activity.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		controller, _ := setupControllerWithMock()
		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.GET("/activities/:id", controller.GetActivityByID)

		req := httptest.NewRequest("GET", "/activities/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateActivity(t *testing.T) {
	activity := storedActivity(1)

	t.Run("successful full replace", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("FindByID", activity.ID, uint(1)).Return(activity, nil)
		mockRepo.On("Update", mock.AnythingOfType("*models.Activity")).Return(nil)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.PUT("/activities/:id", controller.UpdateActivity)

		body := validBody()
		body["start_time"] = "08:00"
		body["end_time"] = "08:30"
		payload, _ := json.Marshal(body)

		req := httptest.NewRequest("PUT", "/activities/"+activity.ID.String(), bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("validation failure causes no write", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.PUT("/activities/:id", controller.UpdateActivity)

		body := validBody()
		body["end_time"] = "06:00"
		payload, _ := json.Marshal(body)

		req := httptest.NewRequest("PUT", "/activities/"+activity.ID.String(), bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("foreign activity is not found", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("FindByID", activity.ID, uint(2)).Return(nil, repository.ErrNotFound)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(2))
		router.PUT("/activities/:id", controller.UpdateActivity)

		payload, _ := json.Marshal(validBody())
		req := httptest.NewRequest("PUT", "/activities/"+activity.ID.String(), bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestPatchActivityStatus(t *testing.T) {
	t.Run("status change is written", func(t *testing.T) {
		activity := storedActivity(1)
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("FindByID", activity.ID, uint(1)).Return(activity, nil)
		mockRepo.On("Update", mock.AnythingOfType("*models.Activity")).Return(nil)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.PATCH("/activities/:id/status", controller.PatchActivityStatus)

		payload, _ := json.Marshal(map[string]string{"status": "completed"})
		req := httptest.NewRequest("PATCH", "/activities/"+activity.ID.String()+"/status", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("same status is a no-op success", func(t *testing.T) {
		activity := storedActivity(1) // already pending
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("FindByID", activity.ID, uint(1)).Return(activity, nil)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.PATCH("/activities/:id/status", controller.PatchActivityStatus)

		payload, _ := json.Marshal(map[string]string{"status": "pending"})
		req := httptest.NewRequest("PATCH", "/activities/"+activity.ID.String()+"/status", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("invalid status value", func(t *testing.T) {
		activity := storedActivity(1)
		controller, mockRepo := setupControllerWithMock()

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.PATCH("/activities/:id/status", controller.PatchActivityStatus)

		payload, _ := json.Marshal(map[string]string{"status": "paused"})
		req := httptest.NewRequest("PATCH", "/activities/"+activity.ID.String()+"/status", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestDeleteActivity(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		id := uuid.New()
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("Delete", id, uint(1)).Return(nil)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.DELETE("/activities/:id", controller.DeleteActivity)

		req := httptest.NewRequest("DELETE", "/activities/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("never-created id is not found", func(t *testing.T) {
		id := uuid.New()
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("Delete", id, uint(1)).Return(repository.ErrNotFound)

		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.DELETE("/activities/:id", controller.DeleteActivity)

		req := httptest.NewRequest("DELETE", "/activities/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
