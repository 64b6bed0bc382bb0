package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbridge/app/models"
)

func TestSignUpAndSignIn(t *testing.T) {
	store := NewMemoryStore()

	uid, user, err := SignUpPrincipal(store, "head@school.org", "s3cretpass", "Ms. Okello")
	require.NoError(t, err)
	require.NotEmpty(t, uid)
	assert.Equal(t, models.RolePrincipal, user.Role)
	assert.NotEmpty(t, user.CreatedAt)

	gotUID, got, err := SignIn(store, "head@school.org", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, uid, gotUID)
	assert.Equal(t, "Ms. Okello", got.Name)
	assert.Equal(t, "head@school.org", got.Email)
}

func TestSignInWrongPassword(t *testing.T) {
	store := NewMemoryStore()

	_, _, err := SignUpPrincipal(store, "head@school.org", "s3cretpass", "Ms. Okello")
	require.NoError(t, err)

	_, _, err = SignIn(store, "head@school.org", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = SignIn(store, "nobody@school.org", "s3cretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInMissingProfile(t *testing.T) {
	store := NewMemoryStore()

	uid, _, err := SignUpPrincipal(store, "head@school.org", "s3cretpass", "Ms. Okello")
	require.NoError(t, err)

	// identity survives, profile record is gone: the inconsistent state
	require.NoError(t, store.Remove("users/"+uid))

	_, _, err = SignIn(store, "head@school.org", "s3cretpass")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSignInStampsLastLogin(t *testing.T) {
	store := NewMemoryStore()

	uid, _, err := SignUpPrincipal(store, "head@school.org", "s3cretpass", "Ms. Okello")
	require.NoError(t, err)

	// wipe the stamp so the sign-in write is observable on its own
	require.NoError(t, store.Set("users/"+uid, models.User{
		Email: "head@school.org", Name: "Ms. Okello", Role: models.RolePrincipal, CreatedAt: "2026-01-01T00:00:00Z",
	}))

	_, _, err = SignIn(store, "head@school.org", "s3cretpass")
	require.NoError(t, err)

	stored, err := GetUserData(store, uid)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.LastLogin)
	assert.Equal(t, "2026-01-01T00:00:00Z", stored.CreatedAt, "createdAt is stamped once and never rewritten")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	store := NewMemoryStore()

	_, _, err := SignUpPrincipal(store, "head@school.org", "s3cretpass", "Ms. Okello")
	require.NoError(t, err)

	_, _, err = SignUpPrincipal(store, "head@school.org", "otherpass", "Impostor")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUserDataAbsent(t *testing.T) {
	store := NewMemoryStore()

	user, err := GetUserData(store, "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateUserProfileMergesNamedFieldsOnly(t *testing.T) {
	store := NewMemoryStore()

	uid, _, err := SignUpPrincipal(store, "head@school.org", "s3cretpass", "Ms. Okello")
	require.NoError(t, err)

	require.NoError(t, UpdateUserProfile(store, uid, map[string]any{"schoolId": "sch-1"}))

	user, err := GetUserData(store, uid)
	require.NoError(t, err)
	assert.Equal(t, "sch-1", user.SchoolID)
	assert.Equal(t, "Ms. Okello", user.Name)
}

func TestProfileNeverStoresCredentials(t *testing.T) {
	store := NewMemoryStore()

	uid, _, err := SignUpPrincipal(store, "head@school.org", "s3cretpass", "Ms. Okello")
	require.NoError(t, err)

	raw, err := store.Get("users/" + uid)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	_, hasHash := doc["passwordHash"]
	assert.False(t, hasHash)
}
