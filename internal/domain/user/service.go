package user

import "context"

// UserService defines business logic for the user directory.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (string, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) error
	Delete(ctx context.Context, id string) error
}
