package handler

import (
	"net/http"

	"storefront-be/internal/auth"
	"storefront-be/internal/user"
	"storefront-be/internal/utils"
)

type signupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func publicUser(u user.User) *user.PublicUser {
	p := u.Public()
	return &p
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.UserSvc.Register(r.Context(), user.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messageResponse{
		Message: "User created successfully",
		User:    publicUser(u),
	}, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, u, err := h.UserSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, token, h.Session.TTL, h.Session.Secure)
	utils.WriteJSON(w, messageResponse{
		Message: "Login successful",
		User:    publicUser(u),
	}, http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.Session.Secure)
	utils.WriteJSON(w, messageResponse{Message: "Logged out successfully"}, http.StatusOK)
}

// currentUser resolves the session user, writing a 401 when there is none.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (user.User, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, user.ErrInvalidSession.Message, http.StatusUnauthorized)
		return user.User{}, false
	}

	u, err := h.UserSvc.GetByID(r.Context(), userID)
	if err != nil {
		// the token outlived its user
		utils.WriteJSONError(w, user.ErrUserNotFound.Message, http.StatusUnauthorized)
		return user.User{}, false
	}
	return u, true
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, messageResponse{User: publicUser(u)}, http.StatusOK)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.UserSvc.UpdateProfile(r.Context(), u.ID, user.UpdateProfileParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messageResponse{
		Message: "Profile updated successfully",
		User:    publicUser(updated),
	}, http.StatusOK)
}
