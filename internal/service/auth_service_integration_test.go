package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"forum/internal/models"
	"forum/internal/repository"
	"forum/internal/service"
	"forum/internal/testutil"
	"forum/internal/utils"
	"forum/pkg/logger"
)

// AuthServiceIntegrationTestSuite defines test suite
type AuthServiceIntegrationTestSuite struct {
	suite.Suite
	testDB      *testutil.TestDatabase
	authService *service.AuthService
}

// SetupSuite runs before all tests
func (s *AuthServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	userRepo := repository.NewUserRepository(s.testDB.DB)
	s.authService = service.NewAuthService(userRepo, "test-secret-key", 3*time.Hour)
}

// TearDownSuite runs after all tests
func (s *AuthServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest runs before each test (clean database)
func (s *AuthServiceIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

// TestRegister tests account creation with the default role
func (s *AuthServiceIntegrationTestSuite) TestRegister() {
	user, err := s.authService.Register("alice", "Password123")
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), user)
	assert.Equal(s.T(), "alice", user.Username)
	assert.Equal(s.T(), models.RoleUserID, user.RoleID)

	// Password is stored as an argon2id hash, never in the clear
	var stored models.User
	s.testDB.DB.First(&stored, "username = ?", "alice")
	assert.NotEqual(s.T(), "Password123", stored.PasswordHash)
	match, err := utils.VerifyPassword("Password123", stored.PasswordHash)
	assert.NoError(s.T(), err)
	assert.True(s.T(), match)
}

// TestRegisterDuplicateUsername tests registration with a taken name
func (s *AuthServiceIntegrationTestSuite) TestRegisterDuplicateUsername() {
	_, err := s.authService.Register("bob", "Password123")
	assert.NoError(s.T(), err)

	user, err := s.authService.Register("bob", "OtherPassword456")
	assert.ErrorIs(s.T(), err, service.ErrUsernameTaken)
	assert.Nil(s.T(), user)

	// Only one account exists
	var count int64
	s.testDB.DB.Model(&models.User{}).Where("username = ?", "bob").Count(&count)
	assert.Equal(s.T(), int64(1), count)
}

// TestLogin tests the full register-then-login flow
func (s *AuthServiceIntegrationTestSuite) TestLogin() {
	_, err := s.authService.Register("carol", "Password123")
	assert.NoError(s.T(), err)

	token, err := s.authService.Login("carol", "Password123")
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), token)
	assert.NotEmpty(s.T(), token.AccessToken)
	assert.Equal(s.T(), "carol", token.User.Username)
	assert.Equal(s.T(), models.RoleUser, token.User.Role)
	assert.True(s.T(), token.ExpiresAt.After(time.Now()))

	// The issued token round-trips through validation
	claims, err := utils.ValidateToken(token.AccessToken, "test-secret-key")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), token.User.ID, claims.UserID)
	assert.Equal(s.T(), models.RoleUser, claims.Role)
}

// TestLoginAdminRole tests that an admin's token carries the Admin role
func (s *AuthServiceIntegrationTestSuite) TestLoginAdminRole() {
	testutil.CreateTestUser(s.T(), s.testDB.DB, "admin", "AdminPass123", models.RoleAdminID)

	token, err := s.authService.Login("admin", "AdminPass123")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), models.RoleAdmin, token.User.Role)
}

// TestLoginInvalidCredentials tests that wrong password and unknown
// username produce the same error
func (s *AuthServiceIntegrationTestSuite) TestLoginInvalidCredentials() {
	_, err := s.authService.Register("dave", "CorrectPass123")
	assert.NoError(s.T(), err)

	token, err := s.authService.Login("dave", "WrongPass123")
	assert.ErrorIs(s.T(), err, service.ErrInvalidCredentials)
	assert.Nil(s.T(), token)

	token, err = s.authService.Login("nosuchuser", "CorrectPass123")
	assert.ErrorIs(s.T(), err, service.ErrInvalidCredentials)
	assert.Nil(s.T(), token)
}

// TestSuite runs all tests in the suite
func TestAuthServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceIntegrationTestSuite))
}
