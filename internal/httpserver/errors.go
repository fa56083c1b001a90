package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clubverde/memberweb/internal/apiclient"
)

// relayBackendErr maps a backend reply onto our response: the original
// status passes through, transport failures become a 502.
func relayBackendErr(c echo.Context, err error) error {
	var se *apiclient.StatusError
	if errors.As(err, &se) {
		return echo.NewHTTPError(se.Code, se.Body)
	}
	return echo.NewHTTPError(http.StatusBadGateway, "backend unavailable")
}
