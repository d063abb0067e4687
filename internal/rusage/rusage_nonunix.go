//go:build !unix

package rusage

import "errors"

var errUnsupported = errors.New("rusage is not supported on this platform")

// Self is unsupported on this platform.
func Self() (*Resources, error) {
	return nil, errUnsupported
}

// Children is unsupported on this platform.
func Children() (*Resources, error) {
	return nil, errUnsupported
}
