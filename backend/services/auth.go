package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"camp-portal/backend/config"
	"camp-portal/backend/models"
	"camp-portal/backend/repository"
	"camp-portal/backend/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account is the identity contract consumed by handlers.
type Account struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

type AuthResult struct {
	Token   string  `json:"token"`
	Account Account `json:"user"`
}

type AuthService struct {
	users    UserRepository
	profiles ProfileRepository
	denylist TokenDenylist
	cfg      *config.Config
	cost     int
}

func NewAuthService(users UserRepository, profiles ProfileRepository, denylist TokenDenylist, cfg *config.Config) *AuthService {
	return &AuthService{users: users, profiles: profiles, denylist: denylist, cfg: cfg, cost: bcrypt.DefaultCost}
}

func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	fullName = strings.TrimSpace(fullName)
	if err := s.users.Create(ctx, user, fullName); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	return s.issue(user, fullName)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user, s.displayName(ctx, user.ID))
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.denylist.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Me resolves the signed-in account. A token for a deleted user is unauthenticated.
func (s *AuthService) Me(ctx context.Context, userID string) (*Account, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("me: %w", err)
	}
	return &Account{ID: user.ID, Email: user.Email, DisplayName: s.displayName(ctx, user.ID)}, nil
}

// ProfileUpdate holds optional profile changes. Empty fields are left as is.
type ProfileUpdate struct {
	FullName    string
	OldPassword string
	NewPassword string
}

// UpdateProfile checks the current password before anything is written.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*Account, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}

	var newHash []byte
	if in.NewPassword != "" {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnauthenticated
			}
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
			return nil, ErrWrongPassword
		}
		newHash, err = bcrypt.GenerateFromPassword([]byte(in.NewPassword), s.cost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	if name := strings.TrimSpace(in.FullName); name != "" {
		if _, err := s.profiles.UpdateFullName(ctx, userID, name); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}
	if newHash != nil {
		if err := s.users.UpdatePassword(ctx, userID, string(newHash)); err != nil {
			return nil, fmt.Errorf("update password: %w", err)
		}
	}
	return s.Me(ctx, userID)
}

// RegisteredCount is shown on the landing page.
func (s *AuthService) RegisteredCount(ctx context.Context) (int64, error) {
	n, err := s.profiles.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("registered count: %w", err)
	}
	return n, nil
}

func (s *AuthService) issue(user *models.User, displayName string) (*AuthResult, error) {
	token, err := utils.GenerateJWTToken(user.ID, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{
		Token:   token,
		Account: Account{ID: user.ID, Email: user.Email, DisplayName: displayName},
	}, nil
}

func (s *AuthService) displayName(ctx context.Context, userID string) string {
	p, err := s.profiles.Find(ctx, userID)
	if err != nil {
		return ""
	}
	return p.FullName
}
