package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parklot/internal/service"
)

// VehicleHandler handles vehicle endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// VehicleRequest represents a vehicle create/update request.
type VehicleRequest struct {
	Plate     string `json:"plate" validate:"required"`
	Model     string `json:"model" validate:"required"`
	Color     string `json:"color" validate:"required"`
	AccountID uint   `json:"account_id" validate:"required"`
}

// CreateVehicle godoc
// @Summary Register vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body VehicleRequest true "Vehicle data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	var req VehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request().Context(), req.Plate, req.Model, req.Color, req.AccountID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "vehicle registered successfully",
		"id":      vehicle.ID,
		"vehicle": vehicle,
	})
}

// ListVehicles godoc
// @Summary List vehicles with owners
// @Tags vehicles
// @Produce json
// @Success 200 {array} model.Vehicle
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.vehicleService.ListVehicles(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// ListVehiclesByAccount godoc
// @Summary List vehicles of one account
// @Tags vehicles
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {array} model.Vehicle
// @Failure 400 {object} errors.ErrorResponse
// @Router /vehicles/account/{id} [get]
func (h *VehicleHandler) ListVehiclesByAccount(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	vehicles, err := h.vehicleService.ListVehiclesByAccount(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// GetVehicle godoc
// @Summary Get vehicle by id
// @Tags vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} model.Vehicle
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle godoc
// @Summary Update vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param request body VehicleRequest true "Vehicle data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req VehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request().Context(), id, req.Plate, req.Model, req.Color, req.AccountID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "vehicle updated successfully",
		"vehicle": vehicle,
	})
}

// DeleteVehicle godoc
// @Summary Delete vehicle
// @Tags vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.vehicleService.DeleteVehicle(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "vehicle deleted successfully",
	})
}
