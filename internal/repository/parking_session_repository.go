package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parklot/internal/model"
)

// ParkingSessionRepository defines parking session persistence operations.
type ParkingSessionRepository interface {
	// CreateActive inserts a new open session for the plate unless one is
	// already open. It reports whether the session was created.
	CreateActive(ctx context.Context, session *model.ParkingSession) (bool, error)
	CloseSession(ctx context.Context, id uint, exitTime time.Time, fee decimal.Decimal) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.ParkingSession, error)
	List(ctx context.Context) ([]model.ParkingSession, error)
	ListActive(ctx context.Context) ([]model.ParkingSession, error)
}

type parkingSessionRepository struct {
	db *gorm.DB
}

// NewParkingSessionRepository creates a new parking session repository.
func NewParkingSessionRepository(db *gorm.DB) ParkingSessionRepository {
	return &parkingSessionRepository{db: db}
}

// CreateActive checks for an open session and inserts inside one transaction.
// The locking read serializes concurrent entries for the same plate, so two
// simultaneous requests cannot both pass the check.
func (r *parkingSessionRepository) CreateActive(ctx context.Context, session *model.ParkingSession) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open model.ParkingSession
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("plate = ? AND exit_time IS NULL", session.Plate).
			First(&open).Error
		if err == nil {
			return nil // already parked, leave created false
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// CloseSession sets exit time and fee in a single UPDATE on the one row.
func (r *parkingSessionRepository) CloseSession(ctx context.Context, id uint, exitTime time.Time, fee decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.ParkingSession{}).
		Where("id = ? AND exit_time IS NULL", id).
		Updates(map[string]interface{}{
			"exit_time": exitTime,
			"fee":       fee,
		}).Error
}

// Delete removes a session.
func (r *parkingSessionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ParkingSession{}, id).Error
}

// FindByID finds a session by ID.
func (r *parkingSessionRepository) FindByID(ctx context.Context, id uint) (*model.ParkingSession, error) {
	var session model.ParkingSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// List lists all sessions, most recent entry first.
func (r *parkingSessionRepository) List(ctx context.Context) ([]model.ParkingSession, error) {
	var sessions []model.ParkingSession
	if err := r.db.WithContext(ctx).Order("entry_time DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListActive lists the currently parked sessions, most recent entry first.
func (r *parkingSessionRepository) ListActive(ctx context.Context) ([]model.ParkingSession, error) {
	var sessions []model.ParkingSession
	if err := r.db.WithContext(ctx).Where("exit_time IS NULL").Order("entry_time DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
