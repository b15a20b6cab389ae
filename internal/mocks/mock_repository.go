package mocks

import (
	"time"

	"vitaplan/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockActivityRepository is shared by the controller and service tests.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindByID(id uuid.UUID, userID uint) (*models.Activity, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindAllByUserID(userID uint) ([]models.Activity, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByUserIDAndDate(userID uint, date time.Time) ([]models.Activity, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Activity, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindWithReminders(userID uint) ([]models.Activity, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) Update(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) Delete(id uuid.UUID, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}
