package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// testValidator mirrors the CustomValidator wired in main.
type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// jsonContext builds an echo context carrying a JSON body. The
// controllers under test run with a nil database: only paths that
// reject the request before touching the store are exercised here.
func jsonContext(t testing.TB, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return newTestEcho().NewContext(req, rec), rec
}

func assertErrorBody(t testing.TB, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("expected error %q in body, got %s", want, rec.Body.String())
	}
}
