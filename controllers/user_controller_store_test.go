package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/petopia/petopia_backend/config"
	"github.com/petopia/petopia_backend/utils"
)

func userRecordResponse(email, hash string) bson.D {
	return mtest.CreateCursorResponse(0, "petopia.users", mtest.FirstBatch, bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "name", Value: "A"},
		{Key: "email", Value: email},
		{Key: "password", Value: hash},
	})
}

func TestSignup_PersistsAndIssuesToken(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("new user", func(mt *mtest.T) {
		uc := NewUserController(mt.DB,
			&config.Config{JWTSecret: "test-secret"},
			utils.NewEmailService(&config.Config{}))

		mt.AddMockResponses(
			emptyCursor("petopia.users"),
			mtest.CreateSuccessResponse(),
		)
		c, rec := jsonContext(mt, http.MethodPost, "/api/users/signup",
			`{"name":"A","email":"a@x.com","password":"Str0ng!Pass"}`)
		require.NoError(mt, uc.Signup(c))
		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), `"userName":"A"`)
		assert.Contains(mt, rec.Body.String(), `"token":"`)
	})
}

func TestSignup_DuplicateInsertRejected(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unique index wins the race", func(mt *mtest.T) {
		uc := NewUserController(mt.DB,
			&config.Config{JWTSecret: "test-secret"},
			utils.NewEmailService(&config.Config{}))

		mt.AddMockResponses(
			emptyCursor("petopia.users"),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)
		c, rec := jsonContext(mt, http.MethodPost, "/api/users/signup",
			`{"name":"A","email":"a@x.com","password":"Str0ng!Pass"}`)
		require.NoError(mt, uc.Signup(c))
		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		assertErrorBody(mt, rec, "Email Already in Use")
	})
}

func TestLogin_AgainstStoredHash(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("correct password issues token", func(mt *mtest.T) {
		hash, err := utils.HashPassword("Str0ng!Pass")
		require.NoError(mt, err)

		uc := NewUserController(mt.DB, &config.Config{JWTSecret: "test-secret"}, nil)

		mt.AddMockResponses(userRecordResponse("a@x.com", hash))
		c, rec := jsonContext(mt, http.MethodPost, "/api/users/login",
			`{"email":"a@x.com","password":"Str0ng!Pass"}`)
		require.NoError(mt, uc.Login(c))
		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), `"token":"`)
	})

	mt.Run("wrong password rejected", func(mt *mtest.T) {
		hash, err := utils.HashPassword("Str0ng!Pass")
		require.NoError(mt, err)

		uc := NewUserController(mt.DB, &config.Config{JWTSecret: "test-secret"}, nil)

		mt.AddMockResponses(userRecordResponse("a@x.com", hash))
		c, rec := jsonContext(mt, http.MethodPost, "/api/users/login",
			`{"email":"a@x.com","password":"Wr0ng!Pass9"}`)
		require.NoError(mt, uc.Login(c))
		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		assertErrorBody(mt, rec, "Incorrect Password")
	})
}

func TestUpdatePassword_RejectsReuse(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("same plaintext as stored hash", func(mt *mtest.T) {
		hash, err := utils.HashPassword("Str0ng!Pass")
		require.NoError(mt, err)

		uc := NewUserController(mt.DB, nil, nil)

		mt.AddMockResponses(userRecordResponse("a@x.com", hash))
		c, rec := jsonContext(mt, http.MethodPut, "/api/users/update-password",
			`{"email":"a@x.com","newPassword":"Str0ng!Pass","newConfirmPassword":"Str0ng!Pass"}`)
		require.NoError(mt, uc.UpdatePassword(c))
		assert.Equal(mt, http.StatusBadRequest, rec.Code)
		assertErrorBody(mt, rec, "You can't reuse your old password")
	})
}
