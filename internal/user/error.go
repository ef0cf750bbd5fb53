package user

import "storefront-be/internal/apperror"

var (
	ErrEmailExists        = apperror.New(apperror.KindConflict, "User already exists with this email")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, "Invalid email or password")
	ErrUserNotFound       = apperror.New(apperror.KindNotFound, "User not found")
	ErrInvalidSession     = apperror.New(apperror.KindUnauthorized, "Not authenticated")
)
