package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-job-tracker/internal/model"
)

type userStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u model.User) error
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id string) error
}

type UserService struct {
	users userStore
}

func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.UserDTO, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}
	return dtos, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (model.UserDTO, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.UserDTO{}, err
	}
	return toUserDTO(user), nil
}

// CreateUser stores a new user from admin-supplied fields. Supplied role
// labels are coerced with the USER fallback; an empty list means USER.
func (s *UserService) CreateUser(ctx context.Context, req model.UserRequest, password string) (model.UserDTO, error) {
	if password == "" {
		return model.UserDTO{}, model.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.UserDTO{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Roles:        coerceRoles(req.Roles),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.UserDTO{}, err
	}
	return toUserDTO(user), nil
}

// UpdateUser overwrites name and email only; roles and password are not
// touched by this operation.
func (s *UserService) UpdateUser(ctx context.Context, id string, req model.UserRequest) (model.UserDTO, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.UserDTO{}, err
	}

	user.Name = req.Name
	user.Email = req.Email

	if err := s.users.Update(ctx, user); err != nil {
		return model.UserDTO{}, err
	}
	return toUserDTO(user), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func coerceRoles(labels []string) []model.Role {
	if len(labels) == 0 {
		return []model.Role{model.RoleUser}
	}

	roles := make([]model.Role, 0, len(labels))
	for _, label := range labels {
		roles = append(roles, model.ParseRole(label))
	}
	return roles
}

func toUserDTO(u model.User) model.UserDTO {
	roles := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, string(role))
	}

	dto := model.UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Roles: roles,
	}
	if !u.CreatedAt.IsZero() {
		dto.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	return dto
}
