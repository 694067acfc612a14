package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"todo-api/pkg/resource"
)

// SetupCORS allows any method and header from the configured origins ("*" by default).
// With credentials enabled a wildcard origin is echoed back as the caller's origin.
func SetupCORS(e *echo.Echo) {
	origins := resource.GetStringSlice("app.cors.allow-origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowCredentials:                         resource.GetBool("app.cors.allow-credentials"),
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))
}
