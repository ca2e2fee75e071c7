// Package models defines the data types persisted and displayed by picshelf.
package models

import "time"

// UserRecord is a locally registered account. Records are append-only: once
// created they are never mutated or deleted.
//
// The password is stored exactly as entered. This is a deliberate part of the
// demo's trust model (everything lives on the user's own machine); it is not
// an example to follow for anything real.
type UserRecord struct {
	// ID is a globally unique identifier assigned at registration.
	ID string `json:"id"`

	// Email is the unique lookup key, compared case-sensitively.
	Email string `json:"email"`

	// Password is the plaintext password, compared for exact equality.
	Password string `json:"password"`

	// CreatedAt is the registration time in UTC.
	CreatedAt time.Time `json:"created_at"`
}
