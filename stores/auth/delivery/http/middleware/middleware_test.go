package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/mocks"
)

const admin = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

func serve(m *AuthMiddleware, token string) (*httptest.ResponseRecorder, domain.Address) {
	e := echo.New()
	var seen domain.Address
	e.GET("/admin", func(c echo.Context) error {
		seen = c.Get("address").(domain.Address)
		return c.NoContent(http.StatusOK)
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	}, m.Auth(), m.IsAdmin())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, seen
}

func TestAdmin(t *testing.T) {
	auth := &mocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "admin-token").Return("0x71c7656ec7ab88b098defb751b7401b5f6d8976f", nil)
	auth.On("ParseToken", mock.Anything, "user-token").Return("0x0000000000000000000000000000000000000bad", nil)
	auth.On("ParseToken", mock.Anything, "junk").Return("", domain.ErrInvalidSignature)
	m := New(auth, []string{admin})

	rec, seen := serve(m, "admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f"), seen)

	rec, _ = serve(m, "user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = serve(m, "junk")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = serve(m, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
