package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"parklot/internal/auth"
	apperrors "parklot/internal/errors"
	"parklot/internal/model"
)

func newTestAuthService(accountRepo *MockAccountRepository, store *MockSessionStore) AuthService {
	tokenService := auth.NewTokenService("test-secret", 4*time.Hour)
	accountService := NewAccountService(accountRepo, nil)
	return NewAuthService(accountService, accountRepo, tokenService, store)
}

func TestAuthService_Login(t *testing.T) {
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockAccountRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:     "successful login stores the session",
			email:    "maria@example.com",
			password: "senha123",
			setupMock: func(mRepo *MockAccountRepository, mStore *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.Account{
					ID:           1,
					Name:         "Maria Silva",
					Email:        "maria@example.com",
					PasswordHash: string(passwordHash),
				}, nil)
				mStore.On("StoreSession", mock.Anything, mock.Anything, auth.SessionData{
					AccountID: 1,
					Name:      "Maria Silva",
					Email:     "maria@example.com",
				}, 4*time.Hour).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "senha123",
			setupMock: func(mRepo *MockAccountRepository, mStore *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrAccountNotFound,
		},
		{
			name:     "wrong password",
			email:    "maria@example.com",
			password: "errada",
			setupMock: func(mRepo *MockAccountRepository, mStore *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.Account{
					ID:           1,
					Email:        "maria@example.com",
					PasswordHash: string(passwordHash),
				}, nil)
			},
			expectedError: apperrors.ErrWrongPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAccountRepository)
			mockStore := new(MockSessionStore)
			tt.setupMock(mockRepo, mockStore)

			svc := newTestAuthService(mockRepo, mockStore)
			token, data, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, data)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, data.Email)
			}

			mockRepo.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Check(t *testing.T) {
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), 10)

	login := func(t *testing.T, mockStore *MockSessionStore) (AuthService, string) {
		mockRepo := new(MockAccountRepository)
		mockRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.Account{
			ID:           1,
			Name:         "Maria Silva",
			Email:        "maria@example.com",
			PasswordHash: string(passwordHash),
		}, nil)
		mockStore.On("StoreSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		svc := newTestAuthService(mockRepo, mockStore)
		token, _, err := svc.Login(context.Background(), "maria@example.com", "senha123")
		assert.NoError(t, err)
		return svc, token
	}

	t.Run("valid session", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		svc, token := login(t, mockStore)

		mockStore.On("GetSession", mock.Anything, mock.Anything).Return(&auth.SessionData{
			AccountID: 1,
			Name:      "Maria Silva",
			Email:     "maria@example.com",
		}, nil)

		data, err := svc.Check(context.Background(), token)
		assert.NoError(t, err)
		assert.NotNil(t, data)
		assert.Equal(t, uint(1), data.AccountID)
	})

	t.Run("revoked session reports logged out", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		svc, token := login(t, mockStore)

		mockStore.On("GetSession", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		data, err := svc.Check(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("garbage token reports logged out", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		mockRepo := new(MockAccountRepository)
		svc := newTestAuthService(mockRepo, mockStore)

		data, err := svc.Check(context.Background(), "not-a-token")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("empty token reports logged out", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		mockRepo := new(MockAccountRepository)
		svc := newTestAuthService(mockRepo, mockStore)

		data, err := svc.Check(context.Background(), "")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("logout revokes the session", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		passwordHash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), 10)
		mockRepo := new(MockAccountRepository)
		mockRepo.On("FindByEmail", mock.Anything, "maria@example.com").Return(&model.Account{
			ID:           1,
			Email:        "maria@example.com",
			PasswordHash: string(passwordHash),
		}, nil)
		mockStore.On("StoreSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockStore.On("DeleteSession", mock.Anything, mock.Anything).Return(nil)

		svc := newTestAuthService(mockRepo, mockStore)
		token, _, err := svc.Login(context.Background(), "maria@example.com", "senha123")
		assert.NoError(t, err)

		assert.NoError(t, svc.Logout(context.Background(), token))
		mockStore.AssertCalled(t, "DeleteSession", mock.Anything, mock.Anything)
	})

	t.Run("logout with garbage token is a no-op", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		mockRepo := new(MockAccountRepository)

		svc := newTestAuthService(mockRepo, mockStore)
		assert.NoError(t, svc.Logout(context.Background(), "not-a-token"))
		mockStore.AssertNotCalled(t, "DeleteSession")
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("register applies account creation rules", func(t *testing.T) {
		mockStore := new(MockSessionStore)
		mockRepo := new(MockAccountRepository)

		svc := newTestAuthService(mockRepo, mockStore)
		account, err := svc.Register(context.Background(), "Maria Silva", "maria@example", "senha123")

		assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
		assert.Nil(t, account)
		mockRepo.AssertNotCalled(t, "Create")
	})
}
