package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindease-app/mindease/internal/database"
)

const (
	// TokenDuration is how long issued tokens are valid
	TokenDuration = 24 * time.Hour

	bcryptCost = 10
)

// Claims are the JWT claims carried by a MindEase session token
type Claims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// Service handles registration, login and token validation
type Service struct {
	db     *database.DB
	secret []byte
}

// NewService creates a new authentication service
func NewService(db *database.DB, jwtSecret string) *Service {
	return &Service{
		db:     db,
		secret: []byte(jwtSecret),
	}
}

// Register creates a new user with a bcrypt-hashed password
func (s *Service) Register(name, email, password string) (*database.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	existing, err := s.db.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.CreateUser(name, email, string(hash))
}

// Login verifies credentials and returns the user plus a signed session token
func (s *Service) Login(email, password string) (*database.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.db.GetUserByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// ValidateToken parses a bearer token and returns the user it belongs to
func (s *Service) ValidateToken(tokenString string) (*database.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	user, err := s.db.GetUserByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("unknown user")
	}

	return user, nil
}

func (s *Service) issueToken(userID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
