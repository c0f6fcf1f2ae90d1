package auth

import "golang.org/x/crypto/bcrypt"

// HashCost matches the work factor the stored hashes were generated with.
const HashCost = 12

// HashPassword hashes the plain text password using bcrypt. Each call salts
// independently, so two hashes of the same password differ.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt digest with a plain password. Any failure,
// including a malformed digest, reads as a mismatch.
func VerifyPassword(digest string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
