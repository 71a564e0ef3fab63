// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cashbook-be/internal/dto"
	"cashbook-be/internal/entity"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/pkg/logger"
	"cashbook-be/internal/repository/contract"
	"cashbook-be/internal/repository/specification"
	"cashbook-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	// Authenticate turns a bearer token into the caller's user id.
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	denylist   contract.TokenDenylist
	jwtSecret  []byte
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	denylist contract.TokenDenylist,
	jwtSecret string,
	tokenTTL time.Duration,
	logger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		denylist:   denylist,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 1. Reject duplicate email
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already registered")
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now().UTC()
	user := entity.User{
		Id:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("AUTH", "User registered", map[string]interface{}{"user_id": user.Id.String()})

	return &dto.RegisterResponse{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check if user exists
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Unauthenticated("Invalid credentials")
	}

	// 2. Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthenticated("Invalid credentials")
	}

	// 3. Generate JWT
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &dto.LoginResponse{
		Token:     signedToken,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC(),
	}, nil
}

// Logout revokes the token until its own expiry. A token that is already
// invalid is reported as such; there is nothing left to revoke.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return apperror.Unauthenticated("Invalid or expired token")
	}

	jti, _ := claims["jti"].(string)
	exp, err := claims.GetExpirationTime()
	if jti == "" || err != nil || exp == nil {
		return apperror.Unauthenticated("Invalid or expired token")
	}

	if err := s.denylist.Revoke(ctx, jti, exp.Time); err != nil {
		return apperror.Internal(err)
	}

	s.logger.Info("AUTH", "Token revoked", map[string]interface{}{"jti": jti})
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := s.parse(token)
	if err != nil {
		return uuid.Nil, apperror.Unauthenticated("Invalid or expired token")
	}

	if jti, _ := claims["jti"].(string); jti != "" {
		revoked, err := s.denylist.IsRevoked(ctx, jti)
		if err != nil {
			return uuid.Nil, apperror.Internal(err)
		}
		if revoked {
			return uuid.Nil, apperror.Unauthenticated("Token has been revoked")
		}
	}

	rawUserId, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawUserId)
	if err != nil {
		return uuid.Nil, apperror.Unauthenticated("Invalid token claims")
	}

	return userId, nil
}

func (s *authService) parse(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
