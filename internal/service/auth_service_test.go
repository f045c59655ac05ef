package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc     *AuthServiceImpl
	repo    *mocks.MockOperatorRepository
	hashSvc *mocks.MockHashService
	tokens  *mocks.MockTokenService
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		repo:    mocks.NewMockOperatorRepository(ctrl),
		hashSvc: mocks.NewMockHashService(ctrl),
		tokens:  mocks.NewMockTokenService(ctrl),
	}
	d.svc = NewAuthService(d.repo, d.hashSvc, d.tokens)
	return d
}

func TestRegister_Success(t *testing.T) {
	d := setupAuthService(t)
	ctx := context.Background()

	d.repo.EXPECT().GetByUsername(ctx, "treasury.ops").Return(nil, nil)
	d.hashSvc.EXPECT().Hash("s3cret-password").Return("$argon2id$hash", nil)
	d.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, op *domain.Operator) error {
			assert.Equal(t, "treasury.ops", op.Username)
			assert.Equal(t, "$argon2id$hash", op.PasswordHash)
			assert.Equal(t, domain.OperatorRoleTreasury, op.Role)
			return nil
		})

	operator, err := d.svc.Register(ctx, "treasury.ops", "s3cret-password", domain.OperatorRoleTreasury)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, operator.ID)
	assert.Equal(t, domain.OperatorRoleTreasury, operator.Role)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	d := setupAuthService(t)
	ctx := context.Background()

	d.repo.EXPECT().GetByUsername(ctx, "treasury.ops").
		Return(&domain.Operator{ID: uuid.New(), Username: "treasury.ops"}, nil)

	operator, err := d.svc.Register(ctx, "treasury.ops", "s3cret-password", domain.OperatorRoleTreasury)
	assert.Nil(t, operator)
	requireAppCode(t, err, "AUTH_002")
}

func TestLogin_Success(t *testing.T) {
	d := setupAuthService(t)
	ctx := context.Background()
	id := uuid.New()

	d.repo.EXPECT().GetByUsername(ctx, "bank.ops").Return(&domain.Operator{
		ID:           id,
		Username:     "bank.ops",
		PasswordHash: "$argon2id$hash",
		Role:         domain.OperatorRoleBankOps,
	}, nil)
	d.hashSvc.EXPECT().Verify("s3cret-password", "$argon2id$hash").Return(true, nil)
	d.tokens.EXPECT().Generate(id, "bank.ops", "BANK_OPS").Return("token-abc", int64(1234567890), nil)

	token, expiresAt, err := d.svc.Login(ctx, "bank.ops", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, int64(1234567890), expiresAt)
}

func TestLogin_UnknownUser(t *testing.T) {
	d := setupAuthService(t)
	ctx := context.Background()

	d.repo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

	token, _, err := d.svc.Login(ctx, "ghost", "whatever")
	assert.Empty(t, token)
	requireAppCode(t, err, "AUTH_001")
}

func TestLogin_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	ctx := context.Background()

	d.repo.EXPECT().GetByUsername(ctx, "bank.ops").Return(&domain.Operator{
		ID:           uuid.New(),
		Username:     "bank.ops",
		PasswordHash: "$argon2id$hash",
	}, nil)
	d.hashSvc.EXPECT().Verify("wrong", "$argon2id$hash").Return(false, nil)

	token, _, err := d.svc.Login(ctx, "bank.ops", "wrong")
	assert.Empty(t, token)
	requireAppCode(t, err, "AUTH_001")
}

func TestLogin_RepoFailure(t *testing.T) {
	d := setupAuthService(t)
	ctx := context.Background()

	d.repo.EXPECT().GetByUsername(ctx, "bank.ops").Return(nil, errors.New("connection refused"))

	token, _, err := d.svc.Login(ctx, "bank.ops", "s3cret-password")
	assert.Empty(t, token)
	requireAppCode(t, err, "SYS_001")
}

func TestArgon2HashService_RoundTrip(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, len(hash) > 0)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := svc.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2HashService_SaltsDiffer(t *testing.T) {
	svc := NewArgon2HashService()

	h1, err := svc.Hash("same password")
	require.NoError(t, err)
	h2, err := svc.Hash("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestArgon2HashService_MalformedHash(t *testing.T) {
	svc := NewArgon2HashService()

	_, err := svc.Verify("password", "not-a-hash")
	assert.Error(t, err)
}

func TestJWTTokenService_RoundTrip(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "daes-settlement-engine")
	id := uuid.New()

	token, expiresAt, err := svc.Generate(id, "treasury.ops", "TREASURY")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.OperatorID)
	assert.Equal(t, "treasury.ops", claims.Username)
	assert.Equal(t, "TREASURY", claims.Role)
}

func TestJWTTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a", time.Hour, "daes-settlement-engine")
	verifier := NewJWTTokenService("secret-b", time.Hour, "daes-settlement-engine")

	token, _, err := issuer.Generate(uuid.New(), "treasury.ops", "TREASURY")
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsExpired(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, "daes-settlement-engine")

	token, _, err := svc.Generate(uuid.New(), "treasury.ops", "TREASURY")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsGarbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "daes-settlement-engine")

	claims, err := svc.Validate("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
