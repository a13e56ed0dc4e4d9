package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rinori/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newUser(t *testing.T, active bool) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Senha@123"), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           5,
		Name:         "Operador",
		Email:        "operador@rinori.jp",
		PasswordHash: string(hash),
		Active:       active,
		RoleID:       2,
	}
}

func TestService_LoginUser(t *testing.T) {
	t.Run("gera token válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		service := NewService(users, "segredo")

		users.EXPECT().GetUserByEmail(gomock.Any(), "operador@rinori.jp").Return(newUser(t, true), nil)

		token, err := service.LoginUser(context.Background(), " Operador@Rinori.jp ", "Senha@123")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	tests := []struct {
		name     string
		password string
		user     *domain.User
		repoErr  error
		want     error
	}{
		{name: "senha incorreta", password: "errada", user: newUser(t, true), want: ErrInvalidCredentials},
		{name: "usuário desativado", password: "Senha@123", user: newUser(t, false), want: ErrUserDisabled},
		{name: "usuário inexistente", password: "Senha@123", want: ErrUserNotFound},
		{name: "falha no banco", password: "Senha@123", repoErr: errors.New("conexão perdida"), want: ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mocks.NewMockUserRepository(ctrl)
			service := NewService(users, "segredo")

			users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(tt.user, tt.repoErr)

			_, err := service.LoginUser(context.Background(), "operador@rinori.jp", tt.password)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("sem senha", func(t *testing.T) {
		service := NewService(nil, "segredo")

		_, err := service.LoginUser(context.Background(), "operador@rinori.jp", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(nil, "segredo")
	user := &domain.User{ID: 1, RoleID: 1, Active: true}

	t.Run("assinatura de outra chave", func(t *testing.T) {
		other := NewService(nil, "outra-chave")
		token, err := other.generateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token expirado", func(t *testing.T) {
		expired := NewService(nil, "segredo")
		expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

		token, err := expired.generateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
