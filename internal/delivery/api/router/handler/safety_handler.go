package handler

import (
	"net/http"

	"ayra/internal/delivery/api/response"
	"ayra/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SafetyHandlerParams holds dependencies for SafetyHandler, injected by Fx.
type SafetyHandlerParams struct {
	fx.In

	SafetyUC usecase.SafetyUsecase
}

// SafetyHandler serves the safe routes, locations and tips nested under an alert.
type SafetyHandler struct {
	safetyUC usecase.SafetyUsecase
}

// NewSafetyHandler is the constructor for SafetyHandler.
func NewSafetyHandler(params SafetyHandlerParams) *SafetyHandler {
	return &SafetyHandler{safetyUC: params.SafetyUC}
}

// AddSafeRoute attaches a route to an alert.
//
//	@Summary	Add a safe route
//	@Tags		safety
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"Alert id"
//	@Param		body	body		SafeRouteRequest	true	"Route"
//	@Success	201		{object}	response.SuccessResponse{data=SafeRouteResponse}
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/alerts/{id}/safe-routes [post]
func (h *SafetyHandler) AddSafeRoute(c echo.Context) error {
	alertID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SafeRouteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	route, err := h.safetyUC.AddSafeRoute(c.Request().Context(), alertID, req.Route)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSafeRouteResponse(route))
}

// ListSafeRoutes returns the routes of an alert.
//
//	@Summary	List safe routes
//	@Tags		safety
//	@Produce	json
//	@Param		id	path		int	true	"Alert id"
//	@Success	200	{object}	response.SuccessResponse{data=[]SafeRouteResponse}
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/alerts/{id}/safe-routes [get]
func (h *SafetyHandler) ListSafeRoutes(c echo.Context) error {
	alertID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	routes, err := h.safetyUC.ListSafeRoutes(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(routes, newSafeRouteResponse))
}

// AddSafeLocation attaches a shelter or meeting point to an alert.
//
//	@Summary	Add a safe location
//	@Tags		safety
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"Alert id"
//	@Param		body	body		SafeLocationRequest	true	"Location"
//	@Success	201		{object}	response.SuccessResponse{data=SafeLocationResponse}
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/alerts/{id}/safe-locations [post]
func (h *SafetyHandler) AddSafeLocation(c echo.Context) error {
	alertID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SafeLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.safetyUC.AddSafeLocation(c.Request().Context(), alertID, req.Location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSafeLocationResponse(location))
}

// ListSafeLocations returns the locations of an alert.
//
//	@Summary	List safe locations
//	@Tags		safety
//	@Produce	json
//	@Param		id	path		int	true	"Alert id"
//	@Success	200	{object}	response.SuccessResponse{data=[]SafeLocationResponse}
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/alerts/{id}/safe-locations [get]
func (h *SafetyHandler) ListSafeLocations(c echo.Context) error {
	alertID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	locations, err := h.safetyUC.ListSafeLocations(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(locations, newSafeLocationResponse))
}

// AddSafeTip attaches a tip to an alert.
//
//	@Summary	Add a safety tip
//	@Tags		safety
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int				true	"Alert id"
//	@Param		body	body		SafeTipRequest	true	"Tip"
//	@Success	201		{object}	response.SuccessResponse{data=SafeTipResponse}
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/alerts/{id}/safe-tips [post]
func (h *SafetyHandler) AddSafeTip(c echo.Context) error {
	alertID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SafeTipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tip, err := h.safetyUC.AddSafeTip(c.Request().Context(), alertID, req.Tip)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSafeTipResponse(tip))
}

// ListSafeTips returns the tips of an alert.
//
//	@Summary	List safety tips
//	@Tags		safety
//	@Produce	json
//	@Param		id	path		int	true	"Alert id"
//	@Success	200	{object}	response.SuccessResponse{data=[]SafeTipResponse}
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/alerts/{id}/safe-tips [get]
func (h *SafetyHandler) ListSafeTips(c echo.Context) error {
	alertID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	tips, err := h.safetyUC.ListSafeTips(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(tips, newSafeTipResponse))
}
