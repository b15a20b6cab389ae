package repository

import (
	"time"

	"vitaplan/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound covers both a missing id and an id owned by someone else.
// Callers cannot tell the two apart, so foreign records are never leaked.
var ErrNotFound = gorm.ErrRecordNotFound

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindByID(id uuid.UUID, userID uint) (*models.Activity, error)
	FindAllByUserID(userID uint) ([]models.Activity, error)
	FindByUserIDAndDate(userID uint, date time.Time) ([]models.Activity, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Activity, error)
	FindWithReminders(userID uint) ([]models.Activity, error)
	Update(activity *models.Activity) error
	Delete(id uuid.UUID, userID uint) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindByID(id uuid.UUID, userID uint) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindAllByUserID(userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).
		Order("date, start_time, id").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("start_time, id").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date, start_time, id").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindWithReminders(userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ? AND reminder_enabled = ?", userID, true).
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

func (r *activityRepository) Delete(id uuid.UUID, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
