package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/portfolio-manager-api/internal/config"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		userRepo: userRepo,
		cfg:      &config.Config{SecretKey: "segredo-de-teste"},
	}

	return service, userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           10,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       2,
	}
}

func TestLoginUser(t *testing.T) {
	t.Run("Login com sucesso emite token validável", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := activeUser(t, "Senha@123")

		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

		token, err := service.LoginUser(" Ana@Example.com ", "Senha@123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.RoleID, claims.UserRoleID)
	})

	t.Run("Senha incorreta devolve erro de credenciais", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := activeUser(t, "Senha@123")

		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

		_, err := service.LoginUser("ana@example.com", "errada")

		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Conta desativada não autentica", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := activeUser(t, "Senha@123")
		user.Active = false

		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

		_, err := service.LoginUser("ana@example.com", "Senha@123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

		_, err := service.LoginUser("ninguem@example.com", "Senha@123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Campos vazios", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.LoginUser("", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Senha completa", password: "Forte@123", valid: true},
		{name: "Curta demais", password: "Ab@1", valid: false},
		{name: "Sem maiúscula", password: "fraca@123", valid: false},
		{name: "Sem minúscula", password: "FRACA@123", valid: false},
		{name: "Sem número", password: "Fraca@abc", valid: false},
		{name: "Sem caractere especial", password: "Fraca1234", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tc.password)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	t.Run("Troca com sucesso persiste novo hash", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := activeUser(t, "Antiga@123")

		userRepo.EXPECT().GetUserByID(10).Return(user, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(updated *domain.User) error {
			err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("Nova@456"))
			assert.NoError(t, err)
			return nil
		})

		err := service.ChangePassword(10, "Antiga@123", "Nova@456")

		assert.NoError(t, err)
	})

	t.Run("Nova senha igual à atual é recusada", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := activeUser(t, "Antiga@123")

		userRepo.EXPECT().GetUserByID(10).Return(user, nil)

		err := service.ChangePassword(10, "Antiga@123", "Antiga@123")

		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := activeUser(t, "Antiga@123")

		userRepo.EXPECT().GetUserByID(10).Return(user, nil)

		err := service.ChangePassword(10, "errada", "Nova@456")

		assert.Error(t, err)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	t.Run("Somente administrador pode gerar", func(t *testing.T) {
		service, userRepo := newTestService(t)
		requester := activeUser(t, "Senha@123")
		requester.RoleID = 2

		userRepo.EXPECT().GetUserByID(10).Return(requester, nil)

		_, err := service.GenerateStrongPassword(10, 20)

		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Senha gerada passa na validação de força", func(t *testing.T) {
		service, userRepo := newTestService(t)
		admin := activeUser(t, "Senha@123")
		admin.RoleID = 1
		target := activeUser(t, "Alvo@123")
		target.ID = 20

		userRepo.EXPECT().GetUserByID(10).Return(admin, nil)
		userRepo.EXPECT().GetUserByID(20).Return(target, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

		password, err := service.GenerateStrongPassword(10, 20)

		assert.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Email é normalizado e senha vira hash", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("bruno@example.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "bruno@example.com", user.Email)
			assert.NotEqual(t, "Senha@123", user.PasswordHash)
			assert.False(t, user.Active)
			assert.Equal(t, 3, user.RoleID)
			return user, nil
		})

		_, err := service.CreateUser(&domain.User{
			Name:         "Bruno",
			Lastname:     "Lima",
			Email:        " Bruno@Example.com ",
			PasswordHash: "Senha@123",
		})

		assert.NoError(t, err)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		service, userRepo := newTestService(t)
		existing := activeUser(t, "Senha@123")

		userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(existing, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@example.com",
			PasswordHash: "Senha@123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.User{Email: "so-email@example.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestAuthErrorHelpers(t *testing.T) {
	wrapped := NewUserAuthError(ErrInvalidCredentials, "AUT_001", 10, "Senha incorreta")

	assert.True(t, IsCredentialsError(wrapped))
	assert.False(t, IsAuthorizationError(wrapped))
	assert.True(t, errors.Is(wrapped, ErrInvalidCredentials))
	assert.Contains(t, wrapped.Error(), "Senha incorreta")
}
