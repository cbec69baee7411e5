package helper

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword returns a salted bcrypt hash. Two calls on the same input differ.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash is nil on match, ErrPasswordMismatch on a wrong password,
// and another error when the stored hash is malformed.
func CheckPasswordHash(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

func VerifyPassword(plain, hash string) bool {
	return CheckPasswordHash(hash, plain) == nil
}
