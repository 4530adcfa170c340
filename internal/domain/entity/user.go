// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single CRM account.
// A user authenticates either with a password, a linked Google identity, or both.
type User struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email           string    // Login identifier, stored lower-cased.
	Username        string    // Unique handle chosen at signup or derived from the email.
	PasswordHash    *string   // Bcrypt hash. Nil for Google-only accounts.
	GoogleID        *string   // Google's 'sub' claim once the account is linked.
	Phone           *string
	Company         *string
	GoogleMapsURL   *string   // Business listing the review scraper targets.
	ProfileComplete bool      // Username, phone and company are all present.
	Active          bool      // False once the account has been deleted.
	CreatedAt       time.Time // Timestamp of when this user account was created.
	UpdatedAt       time.Time // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// RecomputeProfileComplete refreshes ProfileComplete from the current fields.
func (u *User) RecomputeProfileComplete() {
	u.ProfileComplete = u.Username != "" &&
		u.Phone != nil && *u.Phone != "" &&
		u.Company != nil && *u.Company != ""
}

// Tombstone deactivates the account and frees its email and username for reuse.
func (u *User) Tombstone(now time.Time) {
	u.Active = false
	u.Email = fmt.Sprintf("deleted_%s@deleted.com", u.ID)
	u.Username = fmt.Sprintf("deleted_%s", u.ID)
	u.GoogleID = nil
	u.UpdatedAt = now
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UsernameFromEmail returns the local part of an email address.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}

// PublicUser is the client-facing view of a user. It never exposes credentials.
type PublicUser struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Company         *string   `json:"company"`
	GoogleMapsURL   *string   `json:"google_maps_url"`
	ProfileComplete bool      `json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Public builds the client-facing view of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Phone:           u.Phone,
		Company:         u.Company,
		GoogleMapsURL:   u.GoogleMapsURL,
		ProfileComplete: u.ProfileComplete,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
