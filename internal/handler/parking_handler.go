package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parklot/internal/service"
)

// ParkingHandler handles parking session endpoints.
type ParkingHandler struct {
	parkingService service.ParkingService
}

// NewParkingHandler creates a new parking handler.
func NewParkingHandler(parkingService service.ParkingService) *ParkingHandler {
	return &ParkingHandler{parkingService: parkingService}
}

// EntryRequest represents a vehicle entry request.
type EntryRequest struct {
	Plate string `json:"plate" validate:"required"`
}

// RegisterEntry godoc
// @Summary Register vehicle entry
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body EntryRequest true "Vehicle plate"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /sessions/entry [post]
func (h *ParkingHandler) RegisterEntry(c echo.Context) error {
	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.parkingService.RegisterEntry(c.Request().Context(), req.Plate)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "entry registered successfully",
		"id":         session.ID,
		"plate":      session.Plate,
		"entry_time": session.EntryTime,
	})
}

// RegisterExit godoc
// @Summary Register vehicle exit and compute fee
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} service.ExitResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sessions/exit/{id} [put]
func (h *ParkingHandler) RegisterExit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	result, err := h.parkingService.RegisterExit(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "exit registered successfully",
		"plate":      result.Plate,
		"entry_time": result.EntryTime,
		"exit_time":  result.ExitTime,
		"fee":        result.Fee,
		"total_time": result.TotalTime,
	})
}

// ListSessions godoc
// @Summary List all parking sessions
// @Tags sessions
// @Produce json
// @Success 200 {array} model.ParkingSession
// @Router /sessions [get]
func (h *ParkingHandler) ListSessions(c echo.Context) error {
	sessions, err := h.parkingService.ListSessions(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

// ListActiveSessions godoc
// @Summary List currently parked vehicles
// @Tags sessions
// @Produce json
// @Success 200 {array} model.ParkingSession
// @Router /sessions/active [get]
func (h *ParkingHandler) ListActiveSessions(c echo.Context) error {
	sessions, err := h.parkingService.ListActiveSessions(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary Get parking session by id
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} model.ParkingSession
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sessions/{id} [get]
func (h *ParkingHandler) GetSession(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	session, err := h.parkingService.GetSession(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete parking session
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *ParkingHandler) DeleteSession(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.parkingService.DeleteSession(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "session deleted successfully",
	})
}
