package handler

import (
	"log/slog"

	"crm/internal/delivery/api/response"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// UserHandler holds dependencies for the authenticated account endpoints.
type UserHandler struct {
	authUC    usecase.AuthUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC:    params.AuthUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents a partial profile update. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Username      *string `json:"username" validate:"omitnil,min=3,max=50"`
	Phone         *string `json:"phone" validate:"omitnil,max=20"`
	Company       *string `json:"company" validate:"omitnil,max=100"`
	GoogleMapsURL *string `json:"google_maps_url" validate:"omitnil,max=500"`
}

// ChangePasswordRequest represents the request body for rotating a password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

// GetProfile returns the authenticated user's public profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// UpdateProfile applies a partial profile update.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Username:      req.Username,
		Phone:         req.Phone,
		Company:       req.Company,
		GoogleMapsURL: req.GoogleMapsURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// ChangePassword rotates the authenticated user's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.authUC.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]string{"message": "Password changed successfully"})
}

// DeleteAccount deactivates the authenticated user and revokes all sessions.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.authUC.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]string{"message": "Account deleted successfully"})
}
