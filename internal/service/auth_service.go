package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-job-tracker/internal/model"
)

const bcryptCost = 12

// signUpAcknowledgment is returned verbatim on success; sign-up does not
// issue a token, the user signs in afterwards.
const signUpAcknowledgment = "User registered successfully"

type credentialStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) error
}

type tokenIssuer interface {
	Issue(principal model.Principal) (string, error)
}

type AuthService struct {
	users  credentialStore
	tokens tokenIssuer
}

func NewAuthService(users credentialStore, tokens tokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignIn verifies the submitted credentials and returns a bearer token.
// Unknown email and wrong password collapse to the same error so the
// response never reveals which part was wrong.
func (s *AuthService) SignIn(ctx context.Context, email string, password string) (model.JwtAuthenticationResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.JwtAuthenticationResponse{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.JwtAuthenticationResponse{}, fmt.Errorf("sign in lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.JwtAuthenticationResponse{}, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(model.NewPrincipal(user))
	if err != nil {
		return model.JwtAuthenticationResponse{}, fmt.Errorf("issue token: %w", err)
	}

	return model.JwtAuthenticationResponse{AccessToken: token, TokenType: "Bearer"}, nil
}

// SignUp registers a new user with the default USER role and returns an
// acknowledgment string. A duplicate email is rejected before any store
// mutation.
func (s *AuthService) SignUp(ctx context.Context, req model.SignUpRequest) (string, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return "", model.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Roles:        []model.Role{model.RoleUser},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return signUpAcknowledgment, nil
}
