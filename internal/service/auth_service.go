package service

import (
	"time"

	"forum/internal/models"
	"forum/internal/repository"
	"forum/internal/utils"
	"forum/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo      *repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a user with the default User role. The username must
// be free.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	taken, err := s.userRepo.UsernameExists(username)
	if err != nil {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		RoleID:       models.RoleUserID,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
	)

	return user, nil
}

// Login verifies credentials and issues a bearer token. The error is the
// same whether the username or the password was wrong.
func (s *AuthService) Login(username, password string) (*TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to look up user",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return &TokenDTO{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User: UserDTO{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role.Name,
		},
	}, nil
}
