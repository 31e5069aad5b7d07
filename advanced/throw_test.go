package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleVoronoiPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool, shouldCrash bool) (err error) {
		defer func() {
			recoveredErr := HandleVoronoiPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		if shouldCrash {
			var empty []int
			_ = empty[len(empty)]
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true, false)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		// Runtime errors are errors too, but not ours
		assert.Panics(t, func() {
			testFn(false, false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false, false)
		assert.NoError(t, err)
	})
}

func TestApplyPanicsOnMissingEntry(t *testing.T) {
	resolver, _, edges := prepareResolver(SingleRightTriangle())
	resolution := resolver.Plan()
	edges.Delete(MakeEdgeKey(0, 1))
	assert.PanicsWithError(t, "closed edge {0 1 false} is missing from the edge map", func() {
		resolver.Apply(resolution)
	})
}
