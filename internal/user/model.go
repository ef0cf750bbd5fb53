package user

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the part of a user that is returned to clients.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type CreateUserParams struct {
	Email          string
	HashedPassword string
	FirstName      string
	LastName       string
}

// UpdateUserParams holds the fields to merge into a stored user; nil fields
// are left unchanged.
type UpdateUserParams struct {
	Email          *string
	HashedPassword *string
	FirstName      *string
	LastName       *string
}

type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UpdateProfileParams struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
}
