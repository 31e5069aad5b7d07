package advanced

import "github.com/pkg/errors"

// Threading errors through the edge map and the resolver for conditions that
// can only arise from a broken internal invariant would add a lot of noise.
// Instead, we panic, and the public API recovers to convert to an error.
//
// The wrapper is a concrete type so that runtime panics (index out of range and
// friends) are never mistaken for one, and still crash.
type VoronoiError struct {
	error
}

// Panic with a VoronoiError.
func fatalf(format string, args ...interface{}) {
	panic(VoronoiError{errors.Errorf(format, args...)})
}

func HandleVoronoiPanicRecover(r interface{}) error {
	if r != nil {
		if voronoiError, ok := r.(VoronoiError); ok {
			return voronoiError.error
		}
		panic(r)
	}
	return nil
}
