package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kanmind/internal/domain"
	"kanmind/internal/dto"
	"kanmind/internal/metrics"
	"kanmind/internal/repository"
	"kanmind/internal/response"
)

// minPasswordLength is the lower bound of the password strength policy
const minPasswordLength = 8

var (
	emailRegexp   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	numericRegexp = regexp.MustCompile(`^[0-9]+$`)
)

// TokenCache caches token-key lookups; implementations may be absent
// (nil cache disables caching).
type TokenCache interface {
	Get(ctx context.Context, key string) (uuid.UUID, bool)
	// Set caches a token lookup. ttl is the token's remaining
	// lifetime; zero means the token never expires.
	Set(ctx context.Context, key string, userID uuid.UUID, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// AuthService defines the interface for registration, login, and token
// validation.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CheckEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	ValidateToken(ctx context.Context, key string) (uuid.UUID, error)
}

type authServiceImpl struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	cache      TokenCache
	tokenTTL   time.Duration
	bcryptCost int
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService. cache may be nil.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	cache TokenCache,
	tokenTTL time.Duration,
	bcryptCost int,
	m *metrics.Metrics,
	logger *zap.Logger,
) AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		cache:      cache,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		metrics:    m,
		logger:     logger,
	}
}

// Register validates the registration request, creates the user, and
// issues a bearer token.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegistrationRequest) (*dto.AuthResponse, error) {
	v := &response.ValidationError{Fields: map[string][]string{}}

	if req.Fullname == "" {
		v.Add("fullname", "This field is required.")
	}
	if req.Email == "" {
		v.Add("email", "This field is required.")
	} else if !emailRegexp.MatchString(req.Email) {
		v.Add("email", "Enter a valid email address.")
	}
	if req.Password == "" {
		v.Add("password", "This field is required.")
	} else {
		if len(req.Password) < minPasswordLength {
			v.Add("password", "Password must be at least 8 characters long.")
		}
		if numericRegexp.MatchString(req.Password) {
			v.Add("password", "Password cannot be entirely numeric.")
		}
	}
	if req.RepeatedPassword == "" {
		v.Add("repeated_password", "This field is required.")
	} else if req.Password != "" && req.Password != req.RepeatedPassword {
		v.Add("repeated_password", "Password does not match.")
	}
	if v.HasErrors() {
		return nil, v
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
	}
	if exists {
		return nil, response.NewValidationError("email", "Email already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	first, last := domain.SplitFullName(req.Fullname)
	user := &domain.User{
		Email:        req.Email,
		FirstName:    first,
		LastName:     last,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	token, err := s.getOrCreateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementUserRegistered()
	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &dto.AuthResponse{
		Token:    token.Key,
		Fullname: user.FullName(),
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

// Login authenticates a user by email and password and returns the
// user's token, issuing one when none exists yet.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	v := &response.ValidationError{Fields: map[string][]string{}}
	if req.Email == "" {
		v.Add("email", "This field is required.")
	}
	if req.Password == "" {
		v.Add("password", "This field is required.")
	}
	if v.HasErrors() {
		return nil, v
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.metrics.RecordLogin("failure")
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid credentials", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.metrics.RecordLogin("failure")
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid credentials", "")
	}
	if !user.IsActive {
		s.metrics.RecordLogin("failure")
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid credentials", "")
	}

	token, err := s.getOrCreateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordLogin("success")

	return &dto.AuthResponse{
		Token:    token.Key,
		Fullname: user.FullName(),
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

// CheckEmail looks up the user registered under an email address
func (s *authServiceImpl) CheckEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	if email == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Email address is missing", "")
	}
	if !emailRegexp.MatchString(email) {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid email format", "")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Email not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	resp := newUserResponse(user)
	return &resp, nil
}

// ValidateToken resolves a token key to the user holding it. Used by
// the auth middleware on every request.
func (s *authServiceImpl) ValidateToken(ctx context.Context, key string) (uuid.UUID, error) {
	if s.cache != nil {
		if userID, ok := s.cache.Get(ctx, key); ok {
			return userID, nil
		}
	}

	token, err := s.tokenRepo.FindByKey(ctx, key)
	if err != nil {
		return uuid.Nil, err
	}
	if token.Expired(time.Now().UTC()) {
		return uuid.Nil, response.NewAppError(response.ErrCodeUnauthorized, "Token expired", "")
	}

	if s.cache != nil {
		// The cache entry must not outlive the token itself.
		var ttl time.Duration
		if token.ExpiresAt != nil {
			ttl = time.Until(*token.ExpiresAt)
		}
		s.cache.Set(ctx, key, token.UserID, ttl)
	}
	return token.UserID, nil
}

// getOrCreateToken returns the user's current token, replacing it only
// when it has expired.
func (s *authServiceImpl) getOrCreateToken(ctx context.Context, userID uuid.UUID) (*domain.AuthToken, error) {
	existing, err := s.tokenRepo.FindByUserID(ctx, userID)
	if err == nil {
		if !existing.Expired(time.Now().UTC()) {
			return existing, nil
		}
		if err := s.tokenRepo.Delete(ctx, existing.ID); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to replace expired token", err.Error())
		}
		if s.cache != nil {
			s.cache.Delete(ctx, existing.Key)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up token", err.Error())
	}

	key, err := domain.GenerateTokenKey()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate token", err.Error())
	}

	token := &domain.AuthToken{
		Key:    key,
		UserID: userID,
	}
	if s.tokenTTL > 0 {
		expires := time.Now().UTC().Add(s.tokenTTL)
		token.ExpiresAt = &expires
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store token", err.Error())
	}
	return token, nil
}
