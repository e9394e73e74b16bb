package handler

import (
	"time"

	"ayra/internal/domain/entity"
	"ayra/internal/domain/service"
	"ayra/internal/usecase"
)

const dateLayout = time.DateOnly

// CoordinateRequest is a candidate point. A known id takes precedence over
// latitude and longitude.
type CoordinateRequest struct {
	ID        *int64   `json:"id,omitempty" validate:"omitempty,gt=0" example:"1"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"required_without=ID,omitempty,latitude" example:"-23.5505"`
	Longitude *float64 `json:"longitude,omitempty" validate:"required_without=ID,omitempty,longitude" example:"-46.6333"`
	Date      string   `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-05-01"`
}

// CoordinateResponse is a stored point.
type CoordinateResponse struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date"`
}

// ListRequest carries the listing filter, page and sort from the query string.
type ListRequest struct {
	Intensity string `query:"intensity"`
	Page      int    `query:"page" validate:"min=0"`
	Size      int    `query:"size" validate:"min=0"`
	Sort      string `query:"sort"`
}

// MarkerRequest is the body of POST /map-marker.
type MarkerRequest struct {
	Title       string             `json:"title" validate:"required,max=255"`
	Description string             `json:"description" validate:"max=2000"`
	Intensity   string             `json:"intensity" validate:"required,max=50" example:"high"`
	Radius      float64            `json:"radius" validate:"gt=0" example:"500"`
	Coordinate  *CoordinateRequest `json:"coordinate"`
}

// MarkerUpdateRequest is the body of PUT /map-marker/:id.
type MarkerUpdateRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Intensity   string  `json:"intensity" validate:"required,max=50"`
	Radius      float64 `json:"radius" validate:"gt=0"`
}

// MarkerResponse is a marker with its coordinate.
type MarkerResponse struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Intensity   string              `json:"intensity"`
	Radius      float64             `json:"radius"`
	Coordinate  *CoordinateResponse `json:"coordinate"`
}

// AlertRequest is the body of POST /alerts.
type AlertRequest struct {
	Title         string             `json:"title" validate:"required,max=255"`
	Description   string             `json:"description" validate:"max=2000"`
	Intensity     string             `json:"intensity" validate:"required,max=50"`
	AlertDatetime *time.Time         `json:"alertDatetime,omitempty"`
	Location      string             `json:"location" validate:"max=255"`
	Radius        float64            `json:"radius" validate:"gt=0"`
	MapMarkerID   *int64             `json:"mapMarkerId,omitempty" validate:"omitempty,gt=0"`
	Coordinate    *CoordinateRequest `json:"coordinate"`
}

// AlertResponse is an alert with its safety records.
type AlertResponse struct {
	ID            int64                   `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Intensity     string                  `json:"intensity"`
	AlertDatetime time.Time               `json:"alertDatetime"`
	Location      string                  `json:"location"`
	Radius        float64                 `json:"radius"`
	MapMarkerID   *int64                  `json:"mapMarkerId,omitempty"`
	Coordinate    *CoordinateResponse     `json:"coordinate"`
	SafeRoutes    []*SafeRouteResponse    `json:"safeRoutes"`
	SafeLocations []*SafeLocationResponse `json:"safeLocations"`
	SafeTips      []*SafeTipResponse      `json:"safeTips"`
}

// SafeRouteRequest is the body of POST /alerts/:id/safe-routes.
type SafeRouteRequest struct {
	Route string `json:"route" validate:"required,max=1000"`
}

// SafeLocationRequest is the body of POST /alerts/:id/safe-locations.
type SafeLocationRequest struct {
	Location string `json:"location" validate:"required,max=1000"`
}

// SafeTipRequest is the body of POST /alerts/:id/safe-tips.
type SafeTipRequest struct {
	Tip string `json:"tip" validate:"required,max=1000"`
}

type SafeRouteResponse struct {
	ID      int64  `json:"id"`
	AlertID int64  `json:"alertId"`
	Route   string `json:"route"`
}

type SafeLocationResponse struct {
	ID       int64  `json:"id"`
	AlertID  int64  `json:"alertId"`
	Location string `json:"location"`
}

type SafeTipResponse struct {
	ID      int64  `json:"id"`
	AlertID int64  `json:"alertId"`
	Tip     string `json:"tip"`
}

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Name       string             `json:"name" validate:"required,max=255"`
	Email      string             `json:"email" validate:"required,email"`
	Password   string             `json:"password" validate:"required,min=6,max=72"`
	Phone      string             `json:"phone" validate:"max=30"`
	Coordinate *CoordinateRequest `json:"coordinate,omitempty"`
}

// UpdateUserRequest is the body of PUT /users/:email. Absent fields are kept.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

// UserCreatedResponse is returned by POST /users.
type UserCreatedResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse is a user profile. The password hash is never rendered.
type UserResponse struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	Coordinate *CoordinateResponse `json:"coordinate,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenResponse carries a JWT pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	TokenResponse
	User *UserResponse `json:"user"`
}

// --- mapping ---

func (r *CoordinateRequest) toInput() *usecase.CoordinateInput {
	if r == nil {
		return nil
	}

	input := &usecase.CoordinateInput{ID: r.ID}
	if r.Latitude != nil {
		input.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		input.Longitude = *r.Longitude
	}
	// The layout is checked by the validator.
	if date, err := time.Parse(dateLayout, r.Date); err == nil {
		input.Date = &date
	}

	return input
}

func (r *ListRequest) toQuery() usecase.ListQuery {
	return usecase.ListQuery{
		Intensity: r.Intensity,
		Page:      r.Page,
		Size:      r.Size,
		Sort:      r.Sort,
	}
}

func newCoordinateResponse(c *entity.Coordinate) *CoordinateResponse {
	if c == nil {
		return nil
	}

	return &CoordinateResponse{
		ID:        c.ID,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Date:      c.Date.Format(dateLayout),
	}
}

func newMarkerResponse(m *entity.MapMarker) *MarkerResponse {
	return &MarkerResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Intensity:   m.Intensity,
		Radius:      m.Radius,
		Coordinate:  newCoordinateResponse(m.Coordinate),
	}
}

func newAlertResponse(a *entity.Alert) *AlertResponse {
	return &AlertResponse{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Intensity:     a.Intensity,
		AlertDatetime: a.AlertDatetime,
		Location:      a.Location,
		Radius:        a.Radius,
		MapMarkerID:   a.MapMarkerID,
		Coordinate:    newCoordinateResponse(a.Coordinate),
		SafeRoutes:    mapAll(a.SafeRoutes, newSafeRouteResponse),
		SafeLocations: mapAll(a.SafeLocations, newSafeLocationResponse),
		SafeTips:      mapAll(a.SafeTips, newSafeTipResponse),
	}
}

func newSafeRouteResponse(r *entity.SafeRoute) *SafeRouteResponse {
	return &SafeRouteResponse{ID: r.ID, AlertID: r.AlertID, Route: r.Route}
}

func newSafeLocationResponse(l *entity.SafeLocation) *SafeLocationResponse {
	return &SafeLocationResponse{ID: l.ID, AlertID: l.AlertID, Location: l.Location}
}

func newSafeTipResponse(t *entity.SafeTip) *SafeTipResponse {
	return &SafeTipResponse{ID: t.ID, AlertID: t.AlertID, Tip: t.Tip}
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Coordinate: newCoordinateResponse(u.Coordinate),
	}
}

func newTokenResponse(p *service.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    p.ExpiresIn,
	}
}

// mapAll never returns nil so empty lists render as [].
func mapAll[E, T any](items []E, fn func(E) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
