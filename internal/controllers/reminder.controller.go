package controllers

import (
	"net/http"
	"time"

	"vitaplan/internal/reminder"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderController struct {
	service *reminder.Service
}

func NewReminderController(service *reminder.Service) *ReminderController {
	return &ReminderController{service: service}
}

func parseAsOf(c *gin.Context) (time.Time, bool) {
	asOfStr := c.Query("as_of")
	if asOfStr == "" {
		return time.Now(), true
	}
	asOf, err := time.Parse(time.RFC3339, asOfStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid as_of",
			"error":   "as_of must be an RFC3339 timestamp",
		})
		return time.Time{}, false
	}
	return asOf, true
}

// DueReminders godoc
// @Summary List reminders that are due and not yet acknowledged
// @Tags reminder
// @Produce json
// @Param as_of query string false "Reference instant (RFC3339), defaults to now"
// @Success 200 {object} map[string]interface{} "Due reminders"
// @Router /reminders/due [get]
func (rc *ReminderController) DueReminders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	reminders, err := rc.service.Due(c.Request.Context(), userID, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve reminders",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Due reminders retrieved successfully",
		"count":   len(reminders),
		"data":    reminders,
	})
}

// UpcomingReminders godoc
// @Summary List reminders that will trigger after as_of
// @Tags reminder
// @Produce json
// @Param as_of query string false "Reference instant (RFC3339), defaults to now"
// @Success 200 {object} map[string]interface{} "Upcoming reminders"
// @Router /reminders/upcoming [get]
func (rc *ReminderController) UpcomingReminders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	reminders, err := rc.service.Upcoming(c.Request.Context(), userID, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve reminders",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Upcoming reminders retrieved successfully",
		"count":   len(reminders),
		"data":    reminders,
	})
}

type acknowledgeInput struct {
	ActivityID  string    `json:"activity_id"`
	TriggerTime time.Time `json:"trigger_time"`
}

// AcknowledgeReminder godoc
// @Summary Mark a reminder occurrence as surfaced
// @Description Idempotent; acknowledging the same occurrence twice succeeds
// @Tags reminder
// @Accept json
// @Produce json
// @Param acknowledgment body acknowledgeInput true "Occurrence to acknowledge"
// @Success 200 {object} map[string]interface{} "Reminder acknowledged"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /reminders/acknowledge [post]
func (rc *ReminderController) AcknowledgeReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input acknowledgeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	activityID, err := uuid.Parse(input.ActivityID)
	if err != nil || input.TriggerTime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "activity_id must be a UUID and trigger_time an RFC3339 timestamp",
		})
		return
	}

	if err := rc.service.Acknowledge(c.Request.Context(), userID, activityID, input.TriggerTime); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to acknowledge reminder",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reminder acknowledged",
		"data":    nil,
	})
}
