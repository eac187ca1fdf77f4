package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/FORIFOR/fanscout-app/internal/models"
	"github.com/FORIFOR/fanscout-app/internal/repositories"
	"github.com/FORIFOR/fanscout-app/internal/services"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) AddRewardPoints(id uint, delta int) (*models.User, error) {
	args := m.Called(id, delta)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAuthService_RegisterUserHashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewAuthService(repo, "test-secret")

	repo.On("GetByUsername", "hana").Return(nil, repositories.ErrNotFound)
	repo.On("GetByEmail", "hana@example.com").Return(nil, repositories.ErrNotFound)
	repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user := &models.User{Username: "hana", Email: "hana@example.com", FullName: "Hana Mori", Password: "plain-password"}
	err := service.RegisterUser(user)
	assert.NoError(t, err)
	assert.NotEqual(t, "plain-password", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plain-password")))
	repo.AssertExpectations(t)
}

func TestAuthService_RegisterUserDuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewAuthService(repo, "test-secret")

	repo.On("GetByUsername", "hana").Return(&models.User{ID: 1, Username: "hana"}, nil)

	err := service.RegisterUser(&models.User{Username: "hana", Email: "new@example.com", Password: "pw"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterUserDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewAuthService(repo, "test-secret")

	repo.On("GetByUsername", "newuser").Return(nil, repositories.ErrNotFound)
	repo.On("GetByEmail", "hana@example.com").Return(&models.User{ID: 1, Email: "hana@example.com"}, nil)

	err := service.RegisterUser(&models.User{Username: "newuser", Email: "hana@example.com", Password: "pw"})
	assert.ErrorIs(t, err, services.ErrEmailRegistered)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewAuthService(repo, "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("plain-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	repo.On("GetByUsername", "hana").Return(&models.User{ID: 5, Username: "hana", Password: string(hash)}, nil)

	token, err := service.LoginUser("hana", "plain-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(5), claims["user_id"])
	assert.Equal(t, "hana", claims["username"])
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewAuthService(repo, "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("plain-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	repo.On("GetByUsername", "hana").Return(&models.User{ID: 5, Username: "hana", Password: string(hash)}, nil)

	_, err = service.LoginUser("hana", "wrong")
	assert.EqualError(t, err, "invalid credentials")
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewAuthService(repo, "test-secret")

	repo.On("GetByUsername", "ghost").Return(nil, repositories.ErrNotFound)

	_, err := service.LoginUser("ghost", "whatever")
	assert.EqualError(t, err, "invalid credentials")
}

func TestAuthService_ValidateTokenRejectsForeignSecret(t *testing.T) {
	repoA := new(MockUserRepository)
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	repoA.On("GetByUsername", "hana").Return(&models.User{ID: 5, Username: "hana", Password: string(hash)}, nil)

	issuer := services.NewAuthService(repoA, "secret-a")
	verifier := services.NewAuthService(new(MockUserRepository), "secret-b")

	token, err := issuer.LoginUser("hana", "pw")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
