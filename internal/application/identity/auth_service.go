// Package identity hosts login and user management for the shop's staff
// accounts.
package identity

import (
	"context"
	"time"

	"github.com/sparepos/backend/internal/domain/identity"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer mints signed access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *identity.User) (token string, expiresAt time.Time, err error)
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse carries the issued token and its expiry.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

// RegisterUserRequest carries a new staff account.
type RegisterUserRequest struct {
	Username string
	Name     string
	Password string
	Role     string
}

// AuthService handles authentication and account management
type AuthService struct {
	userRepo identity.UserRepository
	tokens   TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies credentials and issues an access token. Unknown usernames
// and bad passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("login failed", zap.String("username", req.Username))
		return nil, shared.ErrUnauthorized
	}
	if !user.CheckPassword(req.Password) {
		s.logger.Warn("login failed", zap.String("username", req.Username))
		return nil, shared.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  user.Username,
		Name:      user.Name,
		Role:      string(user.Role),
	}, nil
}

// Register creates a staff account. Usernames are unique.
func (s *AuthService) Register(ctx context.Context, req RegisterUserRequest) error {
	user, err := identity.NewUser(req.Username, req.Name, req.Password, identity.Role(req.Role))
	if err != nil {
		return err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "A user with this username already exists")
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.String("username", user.Username), zap.String("role", req.Role))
	return nil
}

// EnsureAdmin seeds a default admin account when the user table is empty.
// Called once at startup so a fresh install is usable.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user, err := identity.NewUser(username, "Administrator", password, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("seeded default admin account", zap.String("username", username))
	return nil
}
