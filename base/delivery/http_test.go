package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingapi/domain"
)

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		desc       string
		status     int
		data       interface{}
		expStatus  int
		expKind    domain.ErrorKind
		expMessage string
	}{
		{
			desc:       "wrapped stale price",
			status:     http.StatusInternalServerError,
			data:       xerrors.Errorf("GetFreshQuote failed: %w", domain.ErrStalePrice),
			expStatus:  http.StatusServiceUnavailable,
			expKind:    domain.KindStalePrice,
			expMessage: "GetFreshQuote failed: Price feed is stale.",
		},
		{
			desc:       "name too long",
			status:     http.StatusInternalServerError,
			data:       domain.ErrNameTooLong,
			expStatus:  http.StatusBadRequest,
			expKind:    domain.KindNameTooLong,
			expMessage: "The name is too long",
		},
		{
			desc:       "unknown error keeps status",
			status:     http.StatusInternalServerError,
			data:       errors.New("boom"),
			expStatus:  http.StatusInternalServerError,
			expKind:    domain.KindInternal,
			expMessage: "boom",
		},
	}

	for _, tt := range tests {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, MakeJsonResp(c, tt.status, tt.data), tt.desc)
		require.Equal(t, tt.expStatus, rec.Code, tt.desc)

		var body struct {
			Data   ErrorBody          `json:"data"`
			Status JsonResponseStatus `json:"status"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), tt.desc)
		require.Equal(t, JsonResponseStatusFail, body.Status, tt.desc)
		require.Equal(t, tt.expKind, body.Data.Kind, tt.desc)
		require.Equal(t, tt.expMessage, body.Data.Message, tt.desc)
	}
}

func TestMakeJsonRespSuccess(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, MakeJsonResp(c, http.StatusOK, map[string]int{"a": 1}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"data":{"a":1},"status":"success"}`, rec.Body.String())
}
