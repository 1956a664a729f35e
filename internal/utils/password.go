package utils

import "golang.org/x/crypto/bcrypt"

// Cost used for every stored password digest, including the default
// passwords assigned to bulk-imported accounts.
const passwordHashCost = 14

// HashPassword derives the one-way digest stored in a user's password_hash.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(digest), err
}

// CheckPasswordHash reports whether a plain password matches a stored digest.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
