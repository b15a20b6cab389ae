package controllers

import (
	"errors"
	"net/http"
	"time"

	"vitaplan/internal/models"
	"vitaplan/internal/repository"
	"vitaplan/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ActivityController struct {
	repo repository.ActivityRepository
}

func NewActivityController(repo repository.ActivityRepository) *ActivityController {
	return &ActivityController{repo: repo}
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "Missing user identity",
		})
		return 0, false
	}
	userID, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "Invalid user identity",
		})
		return 0, false
	}
	return userID, true
}

func parseActivityID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid activity ID",
			"error":   "ID must be a valid UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}

// CreateActivity godoc
// @Summary Create a new activity
// @Description Create a time-boxed activity on the caller's schedule
// @Tags activity
// @Accept json
// @Produce json
// @Param activity body models.ActivityInput true "Activity fields"
// @Success 201 {object} map[string]interface{} "Activity created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
		return
	}

	activity := input.ToActivity(userID)
	if err := ac.repo.Create(activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Activity created successfully",
		"data":    activity,
	})
}

// ListActivities godoc
// @Summary List the caller's activities
// @Description Flat list by default; ?date= returns a single-day timeline and ?week_start= a 7-day grid
// @Tags activity
// @Produce json
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param week_start query string false "Any day inside the wanted week (YYYY-MM-DD)"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]interface{} "Activities retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Router /activities [get]
func (ac *ActivityController) ListActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if dateStr := c.Query("date"); dateStr != "" {
		ac.listTimeline(c, userID, dateStr)
		return
	}
	if weekStr := c.Query("week_start"); weekStr != "" {
		ac.listWeeklyGrid(c, userID, weekStr)
		return
	}
	ac.listFlat(c, userID)
}

func (ac *ActivityController) listTimeline(c *gin.Context, userID uint, dateStr string) {
	date, err := time.ParseInLocation(models.DateLayout, dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "date must be in YYYY-MM-DD format",
		})
		return
	}

	activities, err := ac.repo.FindByUserIDAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"view":    "timeline",
		"date":    date.Format(models.DateLayout),
		"data":    schedule.Timeline(activities, date),
	})
}

func (ac *ActivityController) listWeeklyGrid(c *gin.Context, userID uint, weekStr string) {
	anchor, err := time.ParseInLocation(models.DateLayout, weekStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid week_start",
			"error":   "week_start must be in YYYY-MM-DD format",
		})
		return
	}

	week := schedule.WeekOf(anchor)
	activities, err := ac.repo.FindByUserIDAndDateRange(userID, week[0], week[6])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    "Activities retrieved successfully",
		"view":       "weekly_grid",
		"week_start": week[0].Format(models.DateLayout),
		"data":       schedule.WeeklyGrid(activities, anchor),
	})
}

func (ac *ActivityController) listFlat(c *gin.Context, userID uint) {
	var filters schedule.Filters
	if cat := c.Query("category"); cat != "" {
		if !models.Category(cat).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid category",
				"error":   "category must be one of: workout, study, sleep, meal, break",
			})
			return
		}
		filters.Category = models.Category(cat)
	}
	if st := c.Query("status"); st != "" {
		if !models.Status(st).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid status",
				"error":   "status must be pending or completed",
			})
			return
		}
		filters.Status = models.Status(st)
	}

	activities, err := ac.repo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"view":    "list",
		"data":    schedule.FlatList(activities, filters),
	})
}

// GetActivityByID godoc
// @Summary Get one activity
// @Tags activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [get]
func (ac *ActivityController) GetActivityByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseActivityID(c)
	if !ok {
		return
	}

	activity, err := ac.repo.FindByID(id, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Activity not found",
			"error":   "No activity exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity retrieved successfully",
		"data":    activity,
	})
}

// UpdateActivity godoc
// @Summary Replace an activity's fields
// @Description Full-field replace; status is only changed via the status endpoint
// @Tags activity
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param activity body models.ActivityInput true "Activity fields"
// @Success 200 {object} map[string]interface{} "Activity updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [put]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseActivityID(c)
	if !ok {
		return
	}

	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if fieldErrs := input.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
		return
	}

	activity, err := ac.repo.FindByID(id, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Activity not found",
			"error":   "No activity exists with the provided ID",
		})
		return
	}

	input.Apply(activity)
	if err := ac.repo.Update(activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity updated successfully",
		"data":    activity,
	})
}

// PatchActivityStatus godoc
// @Summary Set an activity's completion status
// @Description Status-only mutation; setting the current status again succeeds without change
// @Tags activity
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param status body models.StatusInput true "New status"
// @Success 200 {object} map[string]interface{} "Activity status updated"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id}/status [patch]
func (ac *ActivityController) PatchActivityStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseActivityID(c)
	if !ok {
		return
	}

	var input models.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	status := models.Status(input.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  gin.H{"status": "Status must be pending or completed"},
		})
		return
	}

	activity, err := ac.repo.FindByID(id, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Activity not found",
			"error":   "No activity exists with the provided ID",
		})
		return
	}

	// Idempotent: same status is a success with no write.
	if activity.Status != status {
		activity.Status = status
		if err := ac.repo.Update(activity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update activity status",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity status updated",
		"data":    activity,
	})
}

// DeleteActivity godoc
// @Summary Delete an activity permanently
// @Tags activity
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity deleted successfully"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseActivityID(c)
	if !ok {
		return
	}

	if err := ac.repo.Delete(id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Activity not found",
				"error":   "No activity exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity deleted successfully",
		"data":    nil,
	})
}
