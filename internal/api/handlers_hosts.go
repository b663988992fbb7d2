package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// listHosts handles GET /hosts
//
// Returns the latest known report for every registered host as a bare JSON
// array. The snapshot is value-copied before serialization, so slow clients
// never hold the registry lock. Never fails; an empty registry yields [].
func (s *Server) listHosts(c echo.Context) error {
	return c.JSON(http.StatusOK, s.registry.Snapshot())
}

// updateHost handles POST /hosts
//
// Decodes and validates the payload before the registry is touched: a
// malformed body is rejected with field-level details and produces no state
// change. A valid report is upserted at its ip key, fully replacing any
// prior report for that host.
func (s *Server) updateHost(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "failed to read request body",
			Details: err.Error(),
		})
	}

	report, result := s.validator.ValidateReport(body)
	if !result.Valid {
		return c.JSON(http.StatusBadRequest, result)
	}

	if s.config.Server.Debug {
		if pretty, err := json.MarshalIndent(report, "", "  "); err == nil {
			s.debugLog("Incoming /hosts POST:\n%s", pretty)
		}
	}

	s.registry.Upsert(*report)

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "ok",
	})
}
