package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/masdika/employee-directory/internal"
	userDatamodel "github.com/masdika/employee-directory/internal/core/datamodel/user"
)

// Repository is the credential-store contract. GetByEmail returns (nil, nil)
// when no user carries that email; absence is an expected outcome, not an error.
type Repository interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	Create(user *userDatamodel.User) error
	UpdateLastLogin(id int64, at time.Time) error
	EmailExists(email string) (bool, error)
}

// Service verifies credentials and registers users.
type Service struct {
	repo           Repository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(repo Repository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:           repo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Authenticate validates credentials and returns tokens plus the principal.
// A missing user and a wrong password are indistinguishable to the caller,
// and only a successful login mutates the store (last_login_at).
func (s *Service) Authenticate(dto LoginDTO) (TokenPair, *User, error) {
	if appErr := dto.Validate(); appErr != nil {
		return TokenPair{}, nil, appErr
	}

	dm, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Error("failed to look up user by email", "error", err)
		return TokenPair{}, nil, apperrors.NewInternalError("failed to authenticate", err)
	}
	if dm == nil {
		return TokenPair{}, nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dm.PasswordHash), []byte(dto.Password)); err != nil {
		return TokenPair{}, nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(dm.ID, now); err != nil {
		s.logger.Error("failed to update last login", "error", err, "user_id", dm.ID)
		return TokenPair{}, nil, apperrors.NewInternalError("failed to authenticate", err)
	}
	dm.LastLoginAt = &now

	tokens, err := s.issueTokens(dm.ID, dm.Email)
	if err != nil {
		s.logger.Error("failed to issue tokens", "error", err, "user_id", dm.ID)
		return TokenPair{}, nil, apperrors.NewInternalError("failed to authenticate", err)
	}

	s.logger.Info("user authenticated", "user_id", dm.ID)
	return tokens, FromDataModel(dm), nil
}

// Register creates a new user. The existence probe closes the common case;
// the unique constraint on users.email remains the authoritative guard, so a
// duplicate-key failure from the store is also reported as a conflict.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	exists, err := s.repo.EmailExists(dto.Email)
	if err != nil {
		s.logger.Error("failed to check user existence", "error", err)
		return nil, apperrors.NewInternalError("failed to register user", err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	dm := &userDatamodel.User{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(dm); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		s.logger.Error("failed to create user", "error", err)
		return nil, apperrors.NewInternalError("failed to register user", err)
	}

	s.logger.Info("user registered", "user_id", dm.ID)
	return FromDataModel(dm), nil
}

// UserExists is an advisory probe used by the presentation layer for
// friendlier validation messages. Register re-checks regardless.
func (s *Service) UserExists(email string) (bool, error) {
	return s.repo.EmailExists(email)
}

func (s *Service) GetUserByID(userID int64) (*User, error) {
	dm, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	if dm == nil {
		return nil, apperrors.NewNotFoundError("User not found", apperrors.ErrCodeInvalidCredentials)
	}
	return FromDataModel(dm), nil
}

// RefreshTokens validates refresh token and returns a new pair.
func (s *Service) RefreshTokens(refreshToken string) (TokenPair, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	return s.issueTokens(claims.UserID, claims.Email)
}

// ValidateAccessToken validates access token and returns claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func (s *Service) issueTokens(userID int64, email string) (TokenPair, error) {
	accessToken, err := s.tokenGenerator.GenerateAccessToken(userID, email)
	if err != nil {
		return TokenPair{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(userID, email)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// JWTTokenGenerator signs access and refresh tokens with separate HMAC secrets.
type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * 7 * time.Hour
	}
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID int64, email string) (string, error) {
	return j.sign(userID, email, j.AccessTokenTTL, j.AccessTokenSecret)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(userID int64, email string) (string, error) {
	return j.sign(userID, email, j.RefreshTokenTTL, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) sign(userID int64, email string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates a JWT token and returns claims.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		// Refresh tokens outlive the access TTL, so pick the secret by the
		// remaining lifetime of the presented token.
		if claims, ok := token.Claims.(*Claims); ok && claims.ExpiresAt != nil {
			if time.Until(claims.ExpiresAt.Time) > j.AccessTokenTTL {
				return j.RefreshTokenSecret, nil
			}
		}
		return j.AccessTokenSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
