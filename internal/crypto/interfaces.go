package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks password hashes for user accounts.
// It knows nothing about users, storage or transport.
type PasswordHasher interface {
	// Hash derives a new salted hash from password and returns it in
	// encoded form, ready to be stored next to the user record.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash produced by
	// Hash. A malformed encoded hash is returned as an error, a plain
	// mismatch as (false, nil).
	Verify(password, encoded string) (bool, error)
}
