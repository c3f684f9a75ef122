package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserControllerForValidation() *UserController {
	return NewUserController(nil, nil, nil)
}

func TestSignup_MissingFields(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPost, "/api/users/signup",
		`{"name":"","email":"a@x.com","password":"Str0ng!Pass"}`)

	require.NoError(t, uc.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "All fields must be filled")
}

func TestSignup_InvalidEmail(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPost, "/api/users/signup",
		`{"name":"A","email":"not-an-email","password":"Str0ng!Pass"}`)

	require.NoError(t, uc.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "Email not valid")
}

func TestSignup_WeakPassword(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPost, "/api/users/signup",
		`{"name":"A","email":"a@x.com","password":"weak"}`)

	require.NoError(t, uc.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "Password not strong enough")
}

func TestLogin_MissingFields(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPost, "/api/users/login",
		`{"email":"a@x.com"}`)

	require.NoError(t, uc.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "All fields must be filled")
}

func TestLogin_InvalidEmail(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPost, "/api/users/login",
		`{"email":"nope","password":"Str0ng!Pass"}`)

	require.NoError(t, uc.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "Email not valid")
}

func TestUpdateUser_MissingFields(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPut, "/api/users/update",
		`{"name":"A","email":"a@x.com"}`)

	require.NoError(t, uc.UpdateUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "All fields must be filled")
}

func TestUpdatePassword_WeakPassword(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPut, "/api/users/update-password",
		`{"email":"a@x.com","newPassword":"weak","newConfirmPassword":"weak"}`)

	require.NoError(t, uc.UpdatePassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "Password not strong enough")
}

func TestUpdatePassword_Mismatch(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPut, "/api/users/update-password",
		`{"email":"a@x.com","newPassword":"Str0ng!Pass","newConfirmPassword":"Str0ng!Pass2"}`)

	require.NoError(t, uc.UpdatePassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "Both passwords do not match")
}

func TestUpdatePassword_MissingFields(t *testing.T) {
	uc := newUserControllerForValidation()
	c, rec := jsonContext(t, http.MethodPut, "/api/users/update-password",
		`{"email":"a@x.com","newPassword":"Str0ng!Pass"}`)

	require.NoError(t, uc.UpdatePassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "All fields must be filled")
}
