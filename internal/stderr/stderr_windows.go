//go:build windows

// Package stderr is a no-op on Windows.
package stderr

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// Messages always returns nil on Windows.
func Messages() <-chan string {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}
