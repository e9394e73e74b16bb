package handler

import (
	"net/http"

	"ayra/internal/delivery/api/middleware"
	"ayra/internal/delivery/api/response"
	"ayra/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler serves account registration and self-service.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// RegisterUser creates an account. The coordinate is optional.
//
//	@Summary	Register a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RegisterUserRequest	true	"New user"
//	@Success	201		{object}	response.SuccessResponse{data=UserCreatedResponse}
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse	"Unknown coordinate id"
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Coordinate: req.Coordinate.toInput(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &UserCreatedResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// GetProfile returns the authenticated user.
//
//	@Summary	Current user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	response.SuccessResponse{data=UserResponse}
//	@Failure	401	{object}	response.ErrorResponse
//	@Router		/users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateUser changes the caller's own account.
//
//	@Summary	Update own account
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		email	path		string				true	"Account email"
//	@Param		body	body		UpdateUserRequest	true	"Fields to change"
//	@Success	200		{object}	response.SuccessResponse{data=UserResponse}
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	403		{object}	response.ErrorResponse
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/users/{email} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, pathEmail(c), &usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteUser removes the caller's own account.
//
//	@Summary	Delete own account
//	@Tags		users
//	@Security	BearerAuth
//	@Param		email	path	string	true	"Account email"
//	@Success	204
//	@Failure	403	{object}	response.ErrorResponse
//	@Router		/users/{email} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), userID, pathEmail(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
