package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "parklot/internal/errors"
	"parklot/internal/model"
	"parklot/internal/repository"
)

// ExitResult is the fee breakdown returned when a vehicle leaves. TotalTime is
// the raw elapsed time for display and is not rounded the way the fee is.
type ExitResult struct {
	Plate     string          `json:"plate"`
	EntryTime time.Time       `json:"entry_time"`
	ExitTime  time.Time       `json:"exit_time"`
	Fee       decimal.Decimal `json:"fee"`
	TotalTime string          `json:"total_time"`
}

// ParkingService governs the parking session lifecycle: entry, active
// occupancy and exit with fee computation.
type ParkingService interface {
	RegisterEntry(ctx context.Context, plate string) (*model.ParkingSession, error)
	RegisterExit(ctx context.Context, id uint) (*ExitResult, error)
	GetSession(ctx context.Context, id uint) (*model.ParkingSession, error)
	ListSessions(ctx context.Context) ([]model.ParkingSession, error)
	ListActiveSessions(ctx context.Context) ([]model.ParkingSession, error)
	DeleteSession(ctx context.Context, id uint) error
}

type parkingService struct {
	repo       repository.ParkingSessionRepository
	hourlyRate decimal.Decimal
	now        func() time.Time
}

// NewParkingService builds a ParkingService charging the given hourly rate.
func NewParkingService(repo repository.ParkingSessionRepository, hourlyRate decimal.Decimal) ParkingService {
	return &parkingService{
		repo:       repo,
		hourlyRate: hourlyRate,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// calculateFee charges the hourly rate per started hour: elapsed time is
// rounded up to whole hours, and the charge is never below one hour's rate,
// even for non-positive durations caused by clock skew.
func calculateFee(entry, exit time.Time, rate decimal.Decimal) decimal.Decimal {
	hours := int64(math.Ceil(exit.Sub(entry).Hours()))
	if hours < 1 {
		hours = 1
	}
	return rate.Mul(decimal.NewFromInt(hours))
}

// elapsedHours formats the raw elapsed time with two decimal digits.
func elapsedHours(entry, exit time.Time) string {
	return fmt.Sprintf("%.2f hours", exit.Sub(entry).Hours())
}

// RegisterEntry opens a session for the plate. The repository serializes the
// open-session check and the insert, so a plate can have at most one active
// session even under concurrent requests.
func (s *parkingService) RegisterEntry(ctx context.Context, plate string) (*model.ParkingSession, error) {
	normalized, err := normalizePlate(plate)
	if err != nil {
		return nil, err
	}

	session := &model.ParkingSession{
		Plate:     normalized,
		EntryTime: s.now(),
		Fee:       decimal.Zero,
	}
	created, err := s.repo.CreateActive(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("register entry: %w", err)
	}
	if !created {
		return nil, apperrors.ErrAlreadyParked
	}
	return session, nil
}

// RegisterExit closes a session: sets the exit timestamp and the fee, exactly
// once. The fee is persisted and never recomputed afterwards.
func (s *parkingService) RegisterExit(ctx context.Context, id uint) (*ExitResult, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session.ExitTime != nil {
		return nil, apperrors.ErrAlreadyExited
	}

	exitTime := s.now()
	fee := calculateFee(session.EntryTime, exitTime, s.hourlyRate)
	if err := s.repo.CloseSession(ctx, id, exitTime, fee); err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}

	return &ExitResult{
		Plate:     session.Plate,
		EntryTime: session.EntryTime,
		ExitTime:  exitTime,
		Fee:       fee,
		TotalTime: elapsedHours(session.EntryTime, exitTime),
	}, nil
}

// GetSession returns one session.
func (s *parkingService) GetSession(ctx context.Context, id uint) (*model.ParkingSession, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return session, nil
}

// ListSessions lists all sessions, most recent entry first.
func (s *parkingService) ListSessions(ctx context.Context) ([]model.ParkingSession, error) {
	return s.repo.List(ctx)
}

// ListActiveSessions lists the currently parked vehicles.
func (s *parkingService) ListActiveSessions(ctx context.Context) ([]model.ParkingSession, error) {
	return s.repo.ListActive(ctx)
}

// DeleteSession removes a session at any point of its lifecycle.
func (s *parkingService) DeleteSession(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSessionNotFound
		}
		return fmt.Errorf("find session: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
