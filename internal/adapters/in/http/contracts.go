// Package http exposes the booking and catalog operations over an echo
// server. Request bodies are validated structurally with go-playground
// validator before they reach the command layer; domain invariants stay in
// the domain.
package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"portops/internal/core/application/usecases/queries"
	"portops/internal/pkg/errs"
)

// timestampLayout is the wire format for all booking timestamps.
const timestampLayout = "2006-01-02 15:04"

// RequestValidator adapts go-playground validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator echo uses for Bind-then-Validate.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// parseTimestamp parses a wire timestamp, reporting a value error the error
// mapper turns into a 400.
func parseTimestamp(field, value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(timestampLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return parsed, nil
}

// formatTimestamp renders a timestamp in the wire format.
func formatTimestamp(value time.Time) string {
	return value.UTC().Format(timestampLayout)
}

// CreateBookingRequest is the body of POST /booking/CreateBooking.
// Exactly one of booking_duration and booking_end must be supplied.
type CreateBookingRequest struct {
	ShipID          int64  `json:"ship_id" validate:"required,gt=0"`
	DockID          int64  `json:"dock_id" validate:"required,gt=0"`
	BookingStart    string `json:"booking_start" validate:"required"`
	BookingEnd      string `json:"booking_end,omitempty"`
	BookingDuration int    `json:"booking_duration,omitempty" validate:"gte=0"`
	BookingStatus   string `json:"booking_status" validate:"required,oneof=PENDING CONFIRMED"`
}

// UpdateBookingRequest is the body of PUT /booking/UpdateBooking/:id.
// All fields are optional but at least one must be present.
type UpdateBookingRequest struct {
	BookingStart  *string `json:"booking_start,omitempty"`
	BookingEnd    *string `json:"booking_end,omitempty"`
	BookingStatus *string `json:"booking_status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED"`
}

// CreateShipRequest is the body of POST /ship/CreateShip.
type CreateShipRequest struct {
	ShipName            string `json:"ship_name" validate:"required"`
	ShipLength          int    `json:"ship_length" validate:"required,gt=0"`
	RegistrationCountry string `json:"registration_country" validate:"required"`
	CargoTypeID         int64  `json:"cargo_type_id" validate:"required,gt=0"`
	CompanyID           int64  `json:"company_id" validate:"required,gt=0"`
}

// UpdateShipRequest is the body of PUT /ship/UpdateShip/:id.
type UpdateShipRequest struct {
	RegistrationCountry *string `json:"registration_country,omitempty"`
	CargoTypeID         *int64  `json:"cargo_type_id,omitempty" validate:"omitempty,gt=0"`
	CompanyID           *int64  `json:"company_id,omitempty" validate:"omitempty,gt=0"`
}

// CreateDockRequest is the body of POST /dock/CreateDock.
type CreateDockRequest struct {
	DockCode   string  `json:"dock_code" validate:"required"`
	DockLength int     `json:"dock_length" validate:"required,gt=0"`
	CargoTypes []int64 `json:"cargo_types,omitempty" validate:"dive,gt=0"`
}

// UpdateDockLengthRequest is the body of PUT /dock/UpdateLength/:id.
type UpdateDockLengthRequest struct {
	DockLength int `json:"dock_length" validate:"required,gt=0"`
}

// UpdateDockCargoRequest is the body of PUT /dock/UpdateCargo/:id.
type UpdateDockCargoRequest struct {
	CargoTypes []int64 `json:"cargo_types" validate:"required,min=1,dive,gt=0"`
}

// CreateCargoTypeRequest is the body of POST /cargo/CreateCargo.
type CreateCargoTypeRequest struct {
	CargoName string `json:"cargo_name" validate:"required"`
}

// CreateCompanyRequest is the body of POST /company/create_company.
type CreateCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// ShipSummaryResponse is the ship slice nested in booking payloads.
type ShipSummaryResponse struct {
	ID            int64  `json:"id"`
	ShipName      string `json:"ship_name"`
	ShipLength    int    `json:"ship_length"`
	CargoTypeName string `json:"cargo_type_name"`
}

// DockSummaryResponse is the dock slice nested in booking payloads.
type DockSummaryResponse struct {
	ID         int64  `json:"id"`
	DockCode   string `json:"dock_code"`
	DockLength int    `json:"dock_length"`
}

// BookingResponse is the payload for booking reads and writes.
type BookingResponse struct {
	ID            int64               `json:"id"`
	BookingStart  string              `json:"booking_start"`
	BookingEnd    string              `json:"booking_end"`
	BookingStatus string              `json:"booking_status"`
	Ship          ShipSummaryResponse `json:"ship"`
	Dock          DockSummaryResponse `json:"dock"`
}

// ShipResponse is the payload for ship reads and writes.
type ShipResponse struct {
	ID                  int64  `json:"id"`
	ShipName            string `json:"ship_name"`
	ShipLength          int    `json:"ship_length"`
	RegistrationCountry string `json:"registration_country"`
	CargoTypeID         int64  `json:"cargo_type_id"`
	CargoTypeName       string `json:"cargo_type_name,omitempty"`
	CompanyID           int64  `json:"company_id"`
}

// CargoTypeResponse is the payload for cargo type reads and writes.
type CargoTypeResponse struct {
	ID        int64  `json:"id"`
	CargoName string `json:"cargo_name"`
}

// DockResponse is the payload for dock reads and writes.
type DockResponse struct {
	ID         int64               `json:"id"`
	DockCode   string              `json:"dock_code"`
	DockLength int                 `json:"dock_length"`
	CargoTypes []CargoTypeResponse `json:"cargo_types"`
}

// CompanyResponse is the payload for company writes.
type CompanyResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// MessageResponse carries confirmation messages for deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

func bookingResponseFromQuery(resp queries.BookingResponse) BookingResponse {
	return BookingResponse{
		ID:            resp.ID,
		BookingStart:  formatTimestamp(resp.BookingStart),
		BookingEnd:    formatTimestamp(resp.BookingEnd),
		BookingStatus: resp.Status,
		Ship: ShipSummaryResponse{
			ID:            resp.Ship.ID,
			ShipName:      resp.Ship.Name,
			ShipLength:    resp.Ship.Length,
			CargoTypeName: resp.Ship.CargoTypeName,
		},
		Dock: DockSummaryResponse{
			ID:         resp.Dock.ID,
			DockCode:   resp.Dock.Code,
			DockLength: resp.Dock.Length,
		},
	}
}

func shipResponseFromQuery(resp queries.ShipResponse) ShipResponse {
	return ShipResponse{
		ID:                  resp.ID,
		ShipName:            resp.Name,
		ShipLength:          resp.Length,
		RegistrationCountry: resp.RegistrationCountry,
		CargoTypeID:         resp.CargoTypeID,
		CargoTypeName:       resp.CargoTypeName,
		CompanyID:           resp.CompanyID,
	}
}

func dockResponseFromQuery(resp queries.DockResponse) DockResponse {
	cargoTypes := make([]CargoTypeResponse, 0, len(resp.CargoTypes))
	for _, ct := range resp.CargoTypes {
		cargoTypes = append(cargoTypes, CargoTypeResponse{ID: ct.ID, CargoName: ct.Name})
	}
	return DockResponse{
		ID:         resp.ID,
		DockCode:   resp.Code,
		DockLength: resp.Length,
		CargoTypes: cargoTypes,
	}
}

// pathID parses a positive integer path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(ctx).Int64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}
