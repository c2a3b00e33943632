package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parklot/internal/auth"
	apperrors "parklot/internal/errors"
	"parklot/internal/model"
	"parklot/internal/repository"
)

// AuthService handles login sessions.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.Account, error)
	Login(ctx context.Context, email, password string) (token string, data *auth.SessionData, err error)
	Logout(ctx context.Context, token string) error
	Check(ctx context.Context, token string) (*auth.SessionData, error)
}

type authService struct {
	accountService AccountService
	accountRepo    repository.AccountRepository
	tokenService   *auth.TokenService
	sessionStore   auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	accountService AccountService,
	accountRepo repository.AccountRepository,
	tokenService *auth.TokenService,
	sessionStore auth.SessionStoreInterface,
) AuthService {
	return &authService{
		accountService: accountService,
		accountRepo:    accountRepo,
		tokenService:   tokenService,
		sessionStore:   sessionStore,
	}
}

// Register creates an account with the same rules as the account endpoint.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.Account, error) {
	return s.accountService.CreateAccount(ctx, name, email, password)
}

// Login verifies credentials, issues a session token and records the session
// server-side so it can be revoked on logout.
func (s *authService) Login(ctx context.Context, email, password string) (string, *auth.SessionData, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrAccountNotFound
		}
		return "", nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrWrongPassword
	}

	sessionID, token, err := s.tokenService.GenerateSessionToken(account.ID, account.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	data := auth.SessionData{
		AccountID: account.ID,
		Name:      account.Name,
		Email:     account.Email,
	}
	if err := s.sessionStore.StoreSession(ctx, sessionID, data, s.tokenService.TTL()); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, &data, nil
}

// Logout revokes the session behind the token. An invalid or expired token is
// not an error, logout is idempotent.
func (s *authService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.tokenService.ExtractSessionID(token)
	if err != nil {
		return nil
	}
	return s.sessionStore.DeleteSession(ctx, sessionID)
}

// Check resolves the token to the logged-in account summary, or nil when the
// token is missing, invalid, expired or revoked.
func (s *authService) Check(ctx context.Context, token string) (*auth.SessionData, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.tokenService.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	data, err := s.sessionStore.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, nil
	}
	if data.AccountID != claims.AccountID {
		return nil, nil
	}
	return data, nil
}
