//go:build !unix

package statefile

// lockFile is a no-op where flock is unavailable; writes stay atomic through rename.
func lockFile(string) (func(), error) {
	return func() {}, nil
}
