package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/outreach-crm-api/infrastructure/repository"
	"github.com/vfg2006/outreach-crm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/outreach-crm-api/internal/config"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "Senha@123"

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(mockRepo, &config.Config{SecretKey: "test-secret"}).(*Service)
	return service, mockRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, code, authErr.Code)
}

func TestLoginUser(t *testing.T) {
	active := &domain.User{ID: 7, Name: "Ana", Email: "ana@acme.com", Active: true, RoleID: domain.RoleSDR}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		validate func(t *testing.T, s *Service, token string, err error)
	}{
		{
			name:     "Login válido gera token com as claims do usuário",
			email:    "  ANA@acme.com ",
			password: strongPassword,
			setup: func(repo *mocks.MockUserRepository) {
				user := *active
				user.PasswordHash = hashPassword(t, strongPassword)
				repo.EXPECT().GetUserByEmail("ana@acme.com").Return(&user, nil)
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				require.NoError(t, err)
				claims, err := s.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, 7, claims.UserID)
				assert.Equal(t, domain.RoleSDR, claims.UserRoleID)
			},
		},
		{
			name:  "Campos vazios",
			email: "",
			setup: func(repo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assertAuthCode(t, err, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:     "Usuário não encontrado",
			email:    "ninguem@acme.com",
			password: strongPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ninguem@acme.com").Return(nil, nil)
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assertAuthCode(t, err, apiErrors.ErrUserNotFound)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Usuário desativado",
			email:    "ana@acme.com",
			password: strongPassword,
			setup: func(repo *mocks.MockUserRepository) {
				user := *active
				user.Active = false
				repo.EXPECT().GetUserByEmail("ana@acme.com").Return(&user, nil)
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assertAuthCode(t, err, apiErrors.ErrUserDisabled)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "ana@acme.com",
			password: "Errada@123",
			setup: func(repo *mocks.MockUserRepository) {
				user := *active
				user.PasswordHash = hashPassword(t, strongPassword)
				repo.EXPECT().GetUserByEmail("ana@acme.com").Return(&user, nil)
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assertAuthCode(t, err, apiErrors.ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "Erro no banco",
			email:    "ana@acme.com",
			password: strongPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@acme.com").Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, s *Service, token string, err error) {
				assertAuthCode(t, err, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, service, token, err)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service, _ := newTestService(t)
	service.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := service.generateJWT(&domain.User{ID: 1, RoleID: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsSessionError(err))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service, _ := newTestService(t)
	token, err := service.generateJWT(&domain.User{ID: 1})
	require.NoError(t, err)

	other, _ := newTestService(t)
	other.cfg = &config.Config{SecretKey: "outro-segredo"}

	_, err = other.ValidateToken(token)

	assertAuthCode(t, err, apiErrors.ErrInvalidToken)
}

func TestCreateUser(t *testing.T) {
	t.Run("Cria usuário SDR ativo por padrão", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail("bruno@acme.com").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleSDR, user.RoleID)
			assert.True(t, user.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strongPassword)))
			user.ID = 10
			return user, nil
		})

		user, err := service.CreateUser(&domain.CreateUserRequest{
			Name:     "Bruno",
			Email:    "Bruno@Acme.com",
			Password: strongPassword,
		})

		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, "bruno@acme.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Email duplicado", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail("bruno@acme.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(&domain.CreateUserRequest{Name: "Bruno", Email: "bruno@acme.com", Password: strongPassword})

		assertAuthCode(t, err, apiErrors.ErrUserAlreadyExists)
	})

	t.Run("Email duplicado detectado pelo banco", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail("bruno@acme.com").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any()).Return(nil, repository.ErrEmailAlreadyExists)

		_, err := service.CreateUser(&domain.CreateUserRequest{Name: "Bruno", Email: "bruno@acme.com", Password: strongPassword})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Senha fraca", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.CreateUserRequest{Name: "Bruno", Email: "bruno@acme.com", Password: "123"})

		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Perfil inválido", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.CreateUserRequest{Name: "Bruno", Email: "bruno@acme.com", Password: strongPassword, RoleID: 9})

		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("Atualiza a senha", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByID(3).Return(&domain.User{ID: 3, Active: true, PasswordHash: hashPassword(t, strongPassword)}, nil)
		repo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova#Senha9")))
			return nil
		})

		assert.NoError(t, service.ChangePassword(3, strongPassword, "Nova#Senha9"))
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByID(3).Return(&domain.User{ID: 3, PasswordHash: hashPassword(t, strongPassword)}, nil)

		err := service.ChangePassword(3, "Outra@123", "Nova#Senha9")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("Nova senha igual à atual", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByID(3).Return(&domain.User{ID: 3, PasswordHash: hashPassword(t, strongPassword)}, nil)

		err := service.ChangePassword(3, strongPassword, strongPassword)

		assert.ErrorIs(t, err, ErrSamePassword)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	assert.NoError(t, service.ValidatePasswordStrength(strongPassword))
	assert.Error(t, service.ValidatePasswordStrength("curta"))
	assert.Error(t, service.ValidatePasswordStrength("semmaiuscula@1"))
	assert.Error(t, service.ValidatePasswordStrength("SEMMINUSCULA@1"))
	assert.Error(t, service.ValidatePasswordStrength("SemNumero@@"))
	assert.Error(t, service.ValidatePasswordStrength("SemEspecial12"))
}
