package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Admin is the single configured admin identity. The password hash is
// computed once at construction and the value is passed into the HTTP layer
// explicitly, so there is no ordering hazard between hashing and the first
// login attempt.
type Admin struct {
	Username string

	passwordHash []byte
	decoyHash    []byte
}

// NewAdmin hashes the configured password and prepares a decoy hash so that
// credential checks cost the same whether or not the username matches.
func NewAdmin(username, password string) (*Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generating decoy password: %w", err)
	}
	decoy, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing decoy password: %w", err)
	}

	return &Admin{
		Username:     username,
		passwordHash: hash,
		decoyHash:    decoy,
	}, nil
}

// Check verifies a username/password pair. A bcrypt comparison always runs,
// against the decoy hash when the username does not match, so wrong-username
// and wrong-password attempts are indistinguishable to the caller.
func (a *Admin) Check(username, password string) bool {
	hash := a.decoyHash
	usernameOK := username == a.Username
	if usernameOK {
		hash = a.passwordHash
	}

	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	return usernameOK && err == nil
}
