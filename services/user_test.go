package services_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/orderdesk/apperr"
	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/services/testutil"
)

func TestUserRegisterAndAuthenticate(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewUserService(store)

	user, err := svc.Register(services.RegisterInput{
		Name:     "Ayu",
		Email:    "ayu@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", user.Password, "password must be stored hashed")

	got, err := svc.Authenticate(services.LoginInput{Email: "ayu@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(services.LoginInput{Email: "ayu@example.com", Password: "wrong"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewUserService(store)

	_, err := svc.Register(services.RegisterInput{Name: "Ayu", Email: "ayu@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(services.RegisterInput{Name: "Ayu2", Email: "ayu@example.com", Password: "secret2"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Contains(t, appErr.Fields, "email")
}
