package model

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

// UserRequest carries the mutable user fields. Roles are honored on
// create only; update deliberately ignores them.
type UserRequest struct {
	Name  string   `json:"name" validate:"required,min=2,max=100"`
	Email string   `json:"email" validate:"required,email"`
	Roles []string `json:"roles,omitempty"`
}

type JobApplicationRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=100"`
	Company     string `json:"company" validate:"required,min=2,max=100"`
	Location    string `json:"location" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,min=2,max=100"`
	Status      string `json:"status" validate:"required,min=2,max=100"`
}
