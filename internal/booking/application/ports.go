package application

import "context"

// CityLookup checks a city name against an external directory. Used when
// registering bus stations.
type CityLookup interface {
	Exists(ctx context.Context, city string) (bool, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) bool
}
