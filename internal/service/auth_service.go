package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"content-management/internal/models"
	"content-management/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is used when the configured TTL is zero.
const DefaultTokenTTL = 30 * time.Minute

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfAdminAssign    = errors.New("cannot assign the admin role to yourself")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidUserInput   = errors.New("invalid user input")
)

// AuthService handles user auth logic
type AuthService struct {
	users repository.Users
	cfg   JWTConfig
}

func NewAuthService(users repository.Users, cfg JWTConfig) *AuthService {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}
	return &AuthService{users: users, cfg: cfg}
}

// Claims defines JWT claims: the name and role of the caller.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"name"`
	Role     string `json:"role"`
}

// Register hashes the password and creates a new user with the "User" role.
// Fails with ErrUsernameTaken when the username already exists.
func (s *AuthService) Register(username, password string) (int, error) {
	if err := validateUsername(username); err != nil {
		return 0, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	return s.users.Create(username, hash, models.RoleUser)
}

// Login validates credentials and returns a signed JWT carrying name and role claims.
// Absent user and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(u.Username, u.Role)
}

// ParseToken verifies signature, issuer, audience and lifetime, and returns the claims.
func (s *AuthService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	},
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Username == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// AssignRole sets a new role for the target user.
// The actor may not grant the "Admin" role to themself; that rule is a
// dedicated guard here, distinct from the generic role gate in the handlers.
func (s *AuthService) AssignRole(actor, target, role string) error {
	role = strings.TrimSpace(role)
	if role == "" || len(role) > models.MaxRoleLen {
		return fmt.Errorf("%w: role must be non-empty and at most %d chars", ErrInvalidUserInput, models.MaxRoleLen)
	}

	u, err := s.users.GetByUsername(target)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if u.Username == actor && role == models.RoleAdmin {
		return ErrSelfAdminAssign
	}

	n, err := s.users.UpdateRole(target, role)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// helper: validate username constraints
func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is empty", ErrInvalidUserInput)
	}
	if len(username) > models.MaxUsernameLen {
		return fmt.Errorf("%w: username exceeds %d chars", ErrInvalidUserInput, models.MaxUsernameLen)
	}
	return nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(username, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
		Role:     role,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}
