package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parklot/internal/cache"
	apperrors "parklot/internal/errors"
	"parklot/internal/model"
	"parklot/internal/repository"
)

const (
	bcryptCost      = 10
	minPasswordLen  = 6
	accountCacheTTL = 5 * time.Minute
)

// AccountService exposes account CRUD operations.
type AccountService interface {
	CreateAccount(ctx context.Context, name, email, password string) (*model.Account, error)
	GetAccount(ctx context.Context, id uint) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	UpdateAccount(ctx context.Context, id uint, name, email, password string) (*model.Account, error)
	DeleteAccount(ctx context.Context, id uint) error
}

type accountService struct {
	repo  repository.AccountRepository
	cache *cache.Client
}

// NewAccountService builds an AccountService with repository and cache.
func NewAccountService(repo repository.AccountRepository, cache *cache.Client) AccountService {
	return &accountService{repo: repo, cache: cache}
}

// validateEmail applies the deliberately loose check the API documents: the
// address must contain "@" and ".". Not RFC validation.
func validateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", apperrors.ErrPasswordTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *accountService) cacheKey(id uint) string {
	return fmt.Sprintf("account:%d", id)
}

// CreateAccount validates input, hashes the password and persists the account.
func (s *accountService) CreateAccount(ctx context.Context, name, email, password string) (*model.Account, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// GetAccount returns one account, reading through the cache.
func (s *accountService) GetAccount(ctx context.Context, id uint) (*model.Account, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Account
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if payload, err := json.Marshal(account); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, accountCacheTTL)
	}
	return account, nil
}

// ListAccounts lists all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return s.repo.List(ctx)
}

// UpdateAccount updates name and email, re-hashing the password only when a
// new one is supplied.
func (s *accountService) UpdateAccount(ctx context.Context, id uint, name, email, password string) (*model.Account, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	account.Name = name
	account.Email = email
	if password != "" {
		passwordHash, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = passwordHash
	}

	if err := s.repo.Update(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update account: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return account, nil
}

// DeleteAccount removes an account. The database cascade removes owned vehicles.
func (s *accountService) DeleteAccount(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return fmt.Errorf("find account: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
