package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, bool)
	FindByID(ctx context.Context, id string) (*User, bool)
	Update(ctx context.Context, id string, params UpdateUserParams) (*User, bool, error)
}

type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[string]User
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[string]User),
		byEmail: make(map[string]string),
	}
}

// Create inserts the user unless the email is already registered. The check
// and the insert happen under one lock, so concurrent signups with the same
// email cannot both succeed.
func (r *MemoryRepository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[params.Email]; taken {
		return User{}, ErrEmailExists
	}

	now := time.Now()
	u := User{
		ID:        uuid.NewString(),
		Email:     params.Email,
		Password:  params.HashedPassword,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[u.ID] = u
	r.byEmail[u.Email] = u.ID

	return u, nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, false
	}
	u := r.users[id]
	return &u, true
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

// Update merges the non-nil fields into the stored user and refreshes
// UpdatedAt. It reports false when the id is unknown.
func (r *MemoryRepository) Update(ctx context.Context, id string, params UpdateUserParams) (*User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false, nil
	}

	if params.Email != nil && *params.Email != u.Email {
		if _, taken := r.byEmail[*params.Email]; taken {
			return nil, true, ErrEmailExists
		}
		delete(r.byEmail, u.Email)
		u.Email = *params.Email
		r.byEmail[u.Email] = u.ID
	}
	if params.HashedPassword != nil {
		u.Password = *params.HashedPassword
	}
	if params.FirstName != nil {
		u.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		u.LastName = *params.LastName
	}
	u.UpdatedAt = time.Now()

	r.users[id] = u
	return &u, true, nil
}

var _ Repository = (*MemoryRepository)(nil)
