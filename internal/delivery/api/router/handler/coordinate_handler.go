package handler

import (
	"net/http"

	"ayra/internal/delivery/api/response"
	"ayra/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CoordinateHandlerParams holds dependencies for CoordinateHandler, injected by Fx.
type CoordinateHandlerParams struct {
	fx.In

	CoordinateUC usecase.CoordinateUsecase
}

// CoordinateHandler exposes stored coordinates.
type CoordinateHandler struct {
	coordinateUC usecase.CoordinateUsecase
}

// NewCoordinateHandler is the constructor for CoordinateHandler.
func NewCoordinateHandler(params CoordinateHandlerParams) *CoordinateHandler {
	return &CoordinateHandler{coordinateUC: params.CoordinateUC}
}

// GetCoordinate returns one coordinate.
//
//	@Summary	Get a coordinate
//	@Tags		coordinates
//	@Produce	json
//	@Param		id	path		int	true	"Coordinate id"
//	@Success	200	{object}	response.SuccessResponse{data=CoordinateResponse}
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/coordinates/{id} [get]
func (h *CoordinateHandler) GetCoordinate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	coordinate, err := h.coordinateUC.GetCoordinate(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCoordinateResponse(coordinate))
}
