package service

import (
	"context"
	"fmt"
	"time"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"
	"daes-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService for settlement operators.
type AuthServiceImpl struct {
	operatorRepo ports.OperatorRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(operatorRepo ports.OperatorRepository, hashSvc ports.HashService, tokenSvc ports.TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		operatorRepo: operatorRepo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
	}
}

// Register creates a new operator account.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string, role domain.OperatorRole) (*domain.Operator, error) {
	existing, err := s.operatorRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	operator := &domain.Operator{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.operatorRepo.Create(ctx, operator); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create operator: %w", err))
	}
	return operator, nil
}

// Login authenticates an operator and issues a bearer token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, int64, error) {
	operator, err := s.operatorRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", 0, apperror.InternalError(fmt.Errorf("find operator: %w", err))
	}
	if operator == nil {
		return "", 0, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hashSvc.Verify(password, operator.PasswordHash)
	if err != nil || !ok {
		return "", 0, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(operator.ID, operator.Username, string(operator.Role))
	if err != nil {
		return "", 0, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiresAt, nil
}
