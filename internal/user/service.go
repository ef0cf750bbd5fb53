package user

import (
	"context"
	"strings"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id string) (User, error)
	UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (User, error)
	ParseSession(token string) (*CustomClaims, error)
}

type Options struct {
	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int
}

type service struct {
	repo Repository
	opts Options
}

func NewService(repo Repository, opts Options) Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	return &service{repo: repo, opts: opts}
}

// NormalizeEmail is applied to every email the service stores or looks up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, params RegisterParams) (User, error) {
	email := NormalizeEmail(params.Email)
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("email", email),
	)

	if _, exists := s.repo.FindByEmail(ctx, email); exists {
		log.Info("email already registered")
		return User{}, ErrEmailExists
	}

	hashed, err := HashPassword(params.Password, s.opts.BcryptCost)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, CreateUserParams{
		Email:          email,
		HashedPassword: hashed,
		FirstName:      strings.TrimSpace(params.FirstName),
		LastName:       strings.TrimSpace(params.LastName),
	})
	if err != nil {
		log.Info("failed to create user", zap.Error(err))
		return User{}, err
	}

	log.Info("register service completed", zap.String("user_id", u.ID))
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, ok := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if !ok {
		log.Info("email not found")
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Info("password not match", zap.String("user_id", u.ID))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT([]byte(s.opts.JWTSecret), s.opts.SessionTTL, u.ID, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	return token, *u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return User{}, ErrUserNotFound
	}
	return *u, nil
}

func (s *service) UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProfile"),
		zap.String("user_id", id),
	)

	update := UpdateUserParams{
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}
	if params.Email != nil {
		email := NormalizeEmail(*params.Email)
		update.Email = &email
	}
	if params.Password != nil && *params.Password != "" {
		hashed, err := HashPassword(*params.Password, s.opts.BcryptCost)
		if err != nil {
			log.Error("failed to hash password", zap.Error(err))
			return User{}, err
		}
		update.HashedPassword = &hashed
	}

	u, found, err := s.repo.Update(ctx, id, update)
	if !found {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		log.Info("failed to update profile", zap.Error(err))
		return User{}, err
	}

	log.Info("profile updated")
	return *u, nil
}

// ParseSession validates a session token and returns its claims.
func (s *service) ParseSession(token string) (*CustomClaims, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	claims, err := ParseJWT([]byte(s.opts.JWTSecret), token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
