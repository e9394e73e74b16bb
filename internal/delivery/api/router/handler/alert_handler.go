package handler

import (
	"fmt"
	"net/http"

	"ayra/internal/delivery/api/response"
	"ayra/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
}

// AlertHandler serves the /alerts resource.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
}

// NewAlertHandler is the constructor for AlertHandler.
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{alertUC: params.AlertUC}
}

// CreateAlert raises an alert and publishes an alert-raised event.
//
//	@Summary		Raise an alert
//	@Description	The coordinate is required and deduplicated like marker coordinates. mapMarkerId must reference an existing marker.
//	@Tags			alerts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		AlertRequest	true	"New alert"
//	@Success		201		{object}	response.SuccessResponse{data=AlertResponse}
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse	"Unknown coordinate or marker id"
//	@Router			/alerts [post]
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req AlertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	alert, err := h.alertUC.CreateAlert(c.Request().Context(), &usecase.AlertInput{
		Title:         req.Title,
		Description:   req.Description,
		Intensity:     req.Intensity,
		AlertDatetime: req.AlertDatetime,
		Location:      req.Location,
		Radius:        req.Radius,
		MapMarkerID:   req.MapMarkerID,
		Coordinate:    req.Coordinate.toInput(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, fmt.Sprintf("/alerts/%d", alert.ID), newAlertResponse(alert))
}

// GetAlert returns an alert with its safety records.
//
//	@Summary	Get an alert
//	@Tags		alerts
//	@Produce	json
//	@Param		id	path		int	true	"Alert id"
//	@Success	200	{object}	response.SuccessResponse{data=AlertResponse}
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/alerts/{id} [get]
func (h *AlertHandler) GetAlert(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	alert, err := h.alertUC.GetAlert(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAlertResponse(alert))
}

// ListAlerts returns a filtered page of alerts.
//
//	@Summary	List alerts
//	@Tags		alerts
//	@Produce	json
//	@Param		intensity	query		string	false	"Exact intensity"
//	@Param		page		query		int		false	"0-based page"
//	@Param		size		query		int		false	"Page size"
//	@Param		sort		query		string	false	"field[,asc|desc]"
//	@Success	200			{object}	response.SuccessResponse{data=response.PageResponse[AlertResponse]}
//	@Failure	400			{object}	response.ErrorResponse
//	@Router		/alerts [get]
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	var req ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.alertUC.ListAlerts(c.Request().Context(), req.toQuery())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewPageResponse(page, newAlertResponse))
}

// DeleteAlert removes an alert and its safety records.
//
//	@Summary	Delete an alert
//	@Tags		alerts
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Alert id"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/alerts/{id} [delete]
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.alertUC.DeleteAlert(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
