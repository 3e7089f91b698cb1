package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware. An empty
// username means the middleware did not run (or the token carried no subject);
// reject before touching any service.
func ctxIdentity(c echo.Context) (username, role string, err error) {
	username, _ = c.Get("username").(string)
	if username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	return username, role, nil
}
