package processor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ClampReturnsSameInstanceForSameBounds(t *testing.T) {
	c := NewCache[int]()

	p1, err := c.Clamp(1, 5)
	require.NoError(t, err)
	p2, err := c.Clamp(1, 5)
	require.NoError(t, err)

	assert.Same(t, p1, p2)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ClampDistinctBounds(t *testing.T) {
	c := NewCache[int]()

	p1, err := c.Clamp(1, 5)
	require.NoError(t, err)
	p2, err := c.Clamp(1, 6)
	require.NoError(t, err)

	assert.NotSame(t, p1, p2)
	assert.Equal(t, 2, c.Len())
}

func TestCache_ClampInvalidBoundsNotCached(t *testing.T) {
	c := NewCache[float64]()

	_, err := c.Clamp(2, 1)
	assert.ErrorIs(t, err, ErrInvalidBounds)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Caps(t *testing.T) {
	c := NewCache[int]()

	assert.Same(t, c.MinCap(3), c.MinCap(3))
	assert.Same(t, c.MaxCap(3), c.MaxCap(3))
	// min and max caps with the same bound are different processors
	assert.Equal(t, 3, c.MinCap(3).Process(0))
	assert.Equal(t, 0, c.MaxCap(3).Process(0))
	assert.Equal(t, 2, c.Len())
}

func TestCache_ConcurrentLookups(t *testing.T) {
	c := NewCache[int]()

	const goroutines = 32
	results := make([]Processor[int], goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := c.Clamp(0, 100)
			if err == nil {
				results[i] = p
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.NotNil(t, results[i])
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, 1, c.Len())
}

func TestCache_ZeroValueIsUsable(t *testing.T) {
	var c Cache[int]

	assert.Equal(t, 3, c.MinCap(3).Process(1))
	assert.Equal(t, 7, c.MaxCap(7).Process(9))
	p, err := c.Clamp(0, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Process(11))
	assert.Equal(t, 3, c.Len())
}
