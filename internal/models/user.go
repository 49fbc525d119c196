// Package models contains data structures for the application's domain models.
package models

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the work factor used for password digests.
	BcryptCost = 13

	// SessionDuration is how long a session token stays valid after issuance.
	SessionDuration = 24 * time.Hour

	// tokenSourceBytes is the amount of random material behind each token.
	tokenSourceBytes = 64
)

// User represents a registered account. A user owns its comments and
// positions (both removed when the account is deleted) and keeps a
// many-to-many favorites relationship with locations.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordDigest string `gorm:"not null" json:"-"`

	// Session state. The session token expires; the update token is a
	// long-lived secondary credential for account-modification flows and
	// deliberately carries no expiration.
	SessionToken      string    `gorm:"uniqueIndex;not null" json:"-"`
	SessionExpiration time.Time `gorm:"not null" json:"-"`
	UpdateToken       string    `gorm:"uniqueIndex;not null" json:"-"`

	Comments  []Comment  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Positions []Position `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites []Location `gorm:"many2many:favorites;constraint:OnDelete:CASCADE" json:"-"`
}

// NewUser builds a user with a freshly hashed password and an established
// session. The plaintext password is never stored.
func NewUser(name, email, password string) (*User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, NewInternalError(err)
	}
	u := &User{
		Name:           name,
		Email:          email,
		PasswordDigest: string(digest),
	}
	if err := u.RenewSession(); err != nil {
		return nil, err
	}
	return u, nil
}

// generateToken returns a 40-character hex digest derived from 64 bytes of
// cryptographically random material.
func generateToken() (string, error) {
	buf := make([]byte, tokenSourceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", NewInternalError(err)
	}
	sum := sha1.Sum(buf)
	return hex.EncodeToString(sum[:]), nil
}

// RenewSession issues a new session token and update token from independent
// random sources and pushes the session expiration to 24 hours from now.
// Called at registration and on every successful login.
func (u *User) RenewSession() error {
	sessionToken, err := generateToken()
	if err != nil {
		return err
	}
	updateToken, err := generateToken()
	if err != nil {
		return err
	}
	u.SessionToken = sessionToken
	u.SessionExpiration = time.Now().Add(SessionDuration)
	u.UpdateToken = updateToken
	return nil
}

// VerifyPassword reports whether the candidate matches the stored digest.
func (u *User) VerifyPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordDigest), []byte(candidate)) == nil
}

// VerifySessionToken reports whether the token matches and the session has
// not yet expired. A correct token presented at or after the expiration
// instant is rejected.
func (u *User) VerifySessionToken(token string) bool {
	if subtle.ConstantTimeCompare([]byte(token), []byte(u.SessionToken)) != 1 {
		return false
	}
	return time.Now().Before(u.SessionExpiration)
}

// VerifyUpdateToken reports whether the token matches the stored update
// token. Update tokens do not expire; revocation happens by renewing the
// session, which rotates both tokens.
func (u *User) VerifyUpdateToken(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(u.UpdateToken)) == 1
}

// Serialize returns the full wire representation of the user, including
// simplified favorites and session state. The password digest is never
// included; comments and positions are omitted to bound payload size.
func (u *User) Serialize() map[string]any {
	favorites := make([]map[string]any, 0, len(u.Favorites))
	for _, f := range u.Favorites {
		favorites = append(favorites, f.SimpleSerialize())
	}
	return map[string]any{
		"id":                 u.ID,
		"name":               u.Name,
		"email":              u.Email,
		"favorites":          favorites,
		"session_token":      u.SessionToken,
		"session_expiration": formatTimestamp(u.SessionExpiration),
		"update_token":       u.UpdateToken,
	}
}

// SimpleSerialize returns the minimal public-safe representation used when
// embedding the user inside other entities.
func (u *User) SimpleSerialize() map[string]any {
	return map[string]any{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}
