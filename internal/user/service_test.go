package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, bool) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*User), args.Bool(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*User, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*User), args.Bool(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, params UpdateUserParams) (*User, bool, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*User), args.Bool(1), args.Error(2)
}

func testOptions() Options {
	return Options{JWTSecret: "testsecret", SessionTTL: time.Hour, BcryptCost: bcrypt.MinCost}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := NewService(NewMemoryRepository(), testOptions())

		u, err := svc.Register(ctx, RegisterParams{
			Email:     "  Jane@Example.com ",
			Password:  "secret123",
			FirstName: "Jane",
			LastName:  "Doe",
		})
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", u.Email)
		assert.NotEqual(t, "secret123", u.Password)
		assert.True(t, CheckPasswordHash("secret123", u.Password))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc := NewService(NewMemoryRepository(), testOptions())

		_, err := svc.Register(ctx, RegisterParams{Email: "jane@example.com", Password: "secret123"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterParams{Email: "JANE@example.com", Password: "other123"})
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Duplicate email skips hashing and create", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testOptions())

		repo.On("FindByEmail", ctx, "taken@example.com").Return(&User{ID: "u1", Email: "taken@example.com"}, true)

		_, err := svc.Register(ctx, RegisterParams{Email: " Taken@Example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrEmailExists)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testOptions())
		dbErr := errors.New("store unavailable")

		repo.On("FindByEmail", ctx, "a@example.com").Return(nil, false)
		repo.On("Create", ctx, mock.MatchedBy(func(p CreateUserParams) bool {
			return p.Email == "a@example.com" && CheckPasswordHash("secret123", p.HashedPassword)
		})).Return(User{}, dbErr)

		_, err := svc.Register(ctx, RegisterParams{Email: "a@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, dbErr)
		repo.AssertExpectations(t)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(), testOptions())

	registered, err := svc.Register(ctx, RegisterParams{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		token, u, err := svc.Login(ctx, "Jane@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, registered.ID, u.ID)

		claims, err := svc.ParseSession(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, "jane@example.com", claims.Email)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "jane@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ParseSession(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testOptions())

	_, err := svc.ParseSession("")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = svc.ParseSession("garbage")
	assert.ErrorIs(t, err, ErrInvalidSession)

	other, err := GenerateJWT([]byte("another-secret"), time.Hour, "user-1", "a@example.com")
	require.NoError(t, err)
	_, err = svc.ParseSession(other)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, testOptions())

	repo.On("FindByID", ctx, "user-1").Return(&User{ID: "user-1", Email: "a@example.com"}, true)
	repo.On("FindByID", ctx, "missing").Return(nil, false)

	u, err := svc.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
	repo.AssertExpectations(t)
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(), testOptions())

	u, err := svc.Register(ctx, RegisterParams{Email: "jane@example.com", Password: "secret123", FirstName: "Jane"})
	require.NoError(t, err)

	t.Run("Rehashes password", func(t *testing.T) {
		newPassword := "newsecret1"
		updated, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileParams{Password: &newPassword})
		require.NoError(t, err)
		assert.True(t, CheckPasswordHash(newPassword, updated.Password))
		assert.Equal(t, "Jane", updated.FirstName)

		_, _, err = svc.Login(ctx, "jane@example.com", newPassword)
		assert.NoError(t, err)
	})

	t.Run("Normalizes email", func(t *testing.T) {
		email := " JANE.DOE@example.com"
		updated, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileParams{Email: &email})
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", updated.Email)
	})

	t.Run("Email taken", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterParams{Email: "taken@example.com", Password: "secret123"})
		require.NoError(t, err)

		email := "taken@example.com"
		_, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileParams{Email: &email})
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Unknown user", func(t *testing.T) {
		first := "X"
		_, err := svc.UpdateProfile(ctx, "missing", UpdateProfileParams{FirstName: &first})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
