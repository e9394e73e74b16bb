package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"ayra/internal/delivery/api/response"
	"ayra/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	exportFilename = "map-markers.xlsx"
	headerRowCount = "X-Row-Count"
	contentTypePNG = "image/png"
)

// MapMarkerHandlerParams holds dependencies for MapMarkerHandler, injected by Fx.
type MapMarkerHandlerParams struct {
	fx.In

	MarkerUC usecase.MapMarkerUsecase
}

// MapMarkerHandler serves the /map-marker resource.
type MapMarkerHandler struct {
	markerUC usecase.MapMarkerUsecase
}

// NewMapMarkerHandler is the constructor for MapMarkerHandler.
func NewMapMarkerHandler(params MapMarkerHandlerParams) *MapMarkerHandler {
	return &MapMarkerHandler{markerUC: params.MarkerUC}
}

// CreateMarker stores a marker, reusing a nearby coordinate when one exists.
//
//	@Summary		Create a map marker
//	@Description	The coordinate is required. A supplied id must exist; otherwise a stored point within 0.0001 degrees on both axes is reused.
//	@Tags			map-marker
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		MarkerRequest	true	"New marker"
//	@Success		201		{object}	response.SuccessResponse{data=MarkerResponse}
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse	"Unknown coordinate id"
//	@Router			/map-marker [post]
func (h *MapMarkerHandler) CreateMarker(c echo.Context) error {
	var req MarkerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	marker, err := h.markerUC.CreateMarker(c.Request().Context(), &usecase.MarkerInput{
		Title:       req.Title,
		Description: req.Description,
		Intensity:   req.Intensity,
		Radius:      req.Radius,
		Coordinate:  req.Coordinate.toInput(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, fmt.Sprintf("/map-marker/%d", marker.ID), newMarkerResponse(marker))
}

// GetMarker returns one marker.
//
//	@Summary	Get a map marker
//	@Tags		map-marker
//	@Produce	json
//	@Param		id	path		int	true	"Marker id"
//	@Success	200	{object}	response.SuccessResponse{data=MarkerResponse}
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/map-marker/{id} [get]
func (h *MapMarkerHandler) GetMarker(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	marker, err := h.markerUC.GetMarker(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMarkerResponse(marker))
}

// ListMarkers returns a filtered page of markers.
//
//	@Summary	List map markers
//	@Tags		map-marker
//	@Produce	json
//	@Param		intensity	query		string	false	"Exact intensity"
//	@Param		page		query		int		false	"0-based page"	default(0)
//	@Param		size		query		int		false	"Page size"		default(10)	maximum(100)
//	@Param		sort		query		string	false	"field[,asc|desc]"	default(id,desc)
//	@Success	200			{object}	response.SuccessResponse{data=response.PageResponse[MarkerResponse]}
//	@Failure	400			{object}	response.ErrorResponse
//	@Router		/map-marker [get]
func (h *MapMarkerHandler) ListMarkers(c echo.Context) error {
	var req ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.markerUC.ListMarkers(c.Request().Context(), req.toQuery())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewPageResponse(page, newMarkerResponse))
}

// UpdateMarker replaces the descriptive fields of a marker.
//
//	@Summary	Update a map marker
//	@Tags		map-marker
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"Marker id"
//	@Param		body	body		MarkerUpdateRequest	true	"New values"
//	@Success	200		{object}	response.SuccessResponse{data=MarkerResponse}
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/map-marker/{id} [put]
func (h *MapMarkerHandler) UpdateMarker(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req MarkerUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	marker, err := h.markerUC.UpdateMarker(c.Request().Context(), id, &usecase.MarkerUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Intensity:   req.Intensity,
		Radius:      req.Radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMarkerResponse(marker))
}

// DeleteMarker removes a marker. Its coordinate is kept.
//
//	@Summary	Delete a map marker
//	@Tags		map-marker
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Marker id"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/map-marker/{id} [delete]
func (h *MapMarkerHandler) DeleteMarker(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.markerUC.DeleteMarker(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ExportMarkers downloads the filtered listing as a spreadsheet.
//
//	@Summary	Export map markers
//	@Tags		map-marker
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		intensity	query	string	false	"Exact intensity"
//	@Param		sort		query	string	false	"field[,asc|desc]"
//	@Success	200			{file}	binary
//	@Failure	400			{object}	response.ErrorResponse
//	@Router		/map-marker/export [get]
func (h *MapMarkerHandler) ExportMarkers(c echo.Context) error {
	var req ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	export, err := h.markerUC.ExportMarkers(c.Request().Context(), req.toQuery())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportFilename))
	header.Set(headerRowCount, strconv.Itoa(export.Rows))

	return c.Blob(http.StatusOK, export.ContentType, export.Content)
}

// MarkerQRCode renders a QR code of the marker's geo URI.
//
//	@Summary	Marker share QR code
//	@Tags		map-marker
//	@Produce	png
//	@Param		id	path	int	true	"Marker id"
//	@Success	200	{file}	binary
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/map-marker/{id}/qr [get]
func (h *MapMarkerHandler) MarkerQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.markerUC.MarkerQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, contentTypePNG, png)
}

