package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Demo-grade accounts only; a lower cost keeps seeding and tests fast.
const cost = 10

// Hash hashes password using bcrypt
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// Verify compares password with hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
