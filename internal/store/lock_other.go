//go:build !unix

package store

// flock is unavailable here; locking is a no-op.
func lockFile(string) (func() error, error) {
	return func() error { return nil }, nil
}
