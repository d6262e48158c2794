package password

import "golang.org/x/crypto/bcrypt"

// bcrypt embeds a random per-call salt and the cost in the hash itself.
const hashCost = 10

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash. A malformed stored
// hash is indistinguishable from a mismatch.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
