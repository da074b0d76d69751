package services

import (
	"errors"
	"os"
	"time"

	"github.com/alliance-immobilier/api/dto"
	"github.com/alliance-immobilier/api/models"
	"github.com/alliance-immobilier/api/utils"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthService handles account registration and authentication
type AuthService struct {
	userRepo UserStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserStore) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user account. Username and email must both be free;
// the password is bcrypt-hashed before storage.
func (s *AuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	taken, err := s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	registered, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, ErrEmailRegistered
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	})
	if err != nil {
		return nil, err
	}

	return s.respondWithToken(user)
}

// Login authenticates a user and returns a signed token. Unknown usernames
// and wrong passwords produce the same error.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.respondWithToken(user)
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) respondWithToken(user models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID uint, username, email string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
