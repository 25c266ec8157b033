package auth

import "golang.org/x/crypto/bcrypt"

// CodeHasher defines the interface for hashing and verifying login codes.
type CodeHasher interface {
	// Hash returns a one-way hash of the plaintext code.
	Hash(code string) (string, error)

	// Compare compares a hashed code with its possible plaintext equivalent.
	// Returns nil on success, or an error on failure (e.g., mismatch).
	Compare(hashedCode, code string) error
}

// BcryptHasher implements CodeHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new BcryptHasher with the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash implements the CodeHasher interface using bcrypt.
func (h *BcryptHasher) Hash(code string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements the CodeHasher interface using bcrypt.
func (h *BcryptHasher) Compare(hashedCode, code string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
}
