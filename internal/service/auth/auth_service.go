package auth

import (
	"context"
	"errors"
	"strings"

	authpkg "github.com/Domenick1991/travelbooking/internal/auth"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/repository"
)

type AuthUseCase interface {
	Signup(ctx context.Context, input SignupInput) (string, error)
	Login(ctx context.Context, input LoginInput) (string, *domain.User, error)
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService struct {
	users      repository.UserRepository
	tokens     *authpkg.TokenManager
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, tokens *authpkg.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return "", domain.Validation("name, email and password are required")
	}

	hash, err := authpkg.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Issue(user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, *domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return "", nil, domain.Validation("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			authpkg.BurnPassword(input.Password)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !authpkg.CheckPassword(user.PasswordHash, input.Password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

var _ AuthUseCase = (*AuthService)(nil)
