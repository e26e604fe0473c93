package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/memory"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenExpiry  = time.Hour * 24
	refreshTokenExpiry = time.Hour * 24 * 30
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUsers(ctx context.Context) ([]*dto.UserResponse, error)
	SetUserStatus(ctx context.Context, userId uuid.UUID, status string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokenRepo  *memory.TokenRepository
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokenRepo *memory.TokenRepository,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokenRepo:  tokenRepo,
	}
}

func signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        string(user.Role),
		Status:      string(user.Status),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

func (s *authService) issueTokens(user *entity.User) (*dto.LoginResponse, error) {
	signedToken, err := signToken(user)
	if err != nil {
		return nil, err
	}

	refresh := &memory.RefreshToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(refreshTokenExpiry),
	}
	s.tokenRepo.Save(refresh)

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: refresh.Token,
		ExpiresIn:    int(accessTokenExpiry.Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, fmt.Errorf("%w: invalid credentials", serverutils.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", serverutils.ErrUnauthorized)
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, fmt.Errorf("%w: account is blocked", serverutils.ErrForbidden)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	stored, found := s.tokenRepo.Get(req.RefreshToken)
	if !found || time.Now().After(stored.ExpiresAt) {
		return nil, serverutils.ErrUnauthorized
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserID})
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status == entity.UserStatusBlocked {
		return nil, serverutils.ErrUnauthorized
	}

	// Rotate: the old refresh token is single-use
	s.tokenRepo.Delete(req.RefreshToken)

	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	s.tokenRepo.Delete(refreshToken)
	return nil
}

func (s *authService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: &hashStr,
		FullName:     req.FullName,
		Role:         entity.UserRole(req.Role),
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *authService) GetUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		res := toUserResponse(user)
		result = append(result, &res)
	}
	return result, nil
}

func (s *authService) SetUserStatus(ctx context.Context, userId uuid.UUID, status string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.ErrNotFound
	}

	user.Status = entity.UserStatus(status)
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	if user.Status == entity.UserStatusBlocked {
		s.tokenRepo.DeleteByUser(user.ID)
	}
	return nil
}
