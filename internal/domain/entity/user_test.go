package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUser_RecomputeProfileComplete(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected bool
	}{
		{name: "all present", user: User{Username: "jane", Phone: strPtr("123"), Company: strPtr("Acme")}, expected: true},
		{name: "missing phone", user: User{Username: "jane", Company: strPtr("Acme")}, expected: false},
		{name: "empty company", user: User{Username: "jane", Phone: strPtr("123"), Company: strPtr("")}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.user.RecomputeProfileComplete()
			assert.Equal(t, tt.expected, tt.user.ProfileComplete)
		})
	}
}

func TestUser_Tombstone(t *testing.T) {
	id := uuid.New()
	user := User{ID: id, Email: "jane@x.com", Username: "jane", GoogleID: strPtr("g-1"), Active: true}
	now := time.Now()

	user.Tombstone(now)

	assert.False(t, user.Active)
	assert.Equal(t, "deleted_"+id.String()+"@deleted.com", user.Email)
	assert.Equal(t, "deleted_"+id.String(), user.Username)
	assert.Nil(t, user.GoogleID)
	assert.Equal(t, now, user.UpdatedAt)
}

func TestEmailHelpers(t *testing.T) {
	assert.Equal(t, "jane@x.com", NormalizeEmail("  Jane@X.com "))
	assert.Equal(t, "jane", UsernameFromEmail("jane@x.com"))
	assert.Equal(t, "noat", UsernameFromEmail("noat"))
}

func TestUser_PublicOmitsCredentials(t *testing.T) {
	user := User{ID: uuid.New(), Email: "jane@x.com", Username: "jane", PasswordHash: strPtr("hash")}

	public := user.Public()

	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, "jane", public.Username)
	assert.True(t, user.HasPassword())
}
