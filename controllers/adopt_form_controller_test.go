package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveForm_MissingFields(t *testing.T) {
	fc := NewAdoptFormController(nil)
	c, rec := jsonContext(t, http.MethodPost, "/api/form/save",
		`{"email":"a@x.com","phoneNo":"123"}`)

	require.NoError(t, fc.SaveForm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "All fields must be filled")
}

func TestSaveForm_InvalidEmail(t *testing.T) {
	fc := NewAdoptFormController(nil)
	c, rec := jsonContext(t, http.MethodPost, "/api/form/save",
		`{"email":"user@x@x.com","phoneNo":"123","livingSituation":"House","previousExperience":"None","anyPet":"No","petId":"abc","fee":"50"}`)

	require.NoError(t, fc.SaveForm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "Email not valid")
}

func TestDeleteForm_InvalidID(t *testing.T) {
	fc := NewAdoptFormController(nil)
	c, rec := jsonContext(t, http.MethodDelete, "/api/form/reject/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, fc.DeleteForm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorBody(t, rec, "Invalid form ID")
}
