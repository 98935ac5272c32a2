package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemRandom(t *testing.T) {
	assert := assert.New(t)

	sys := NewSystem()
	sys.Seed(42)

	for range 1000 {
		value := sys.Random(-5, 5)
		assert.GreaterOrEqual(value, int32(-5))
		assert.Less(value, int32(5))
	}

	assert.Equal(int32(3), sys.Random(3, 3))
	assert.Equal(int32(3), sys.Random(3, -3))

	// Same seed, same sequence.
	a := &System{}
	a.Seed(7)
	b := &System{}
	b.Seed(7)
	for range 10 {
		assert.Equal(a.Random(0, 1000), b.Random(0, 1000))
	}
}

func TestSystemSleep(t *testing.T) {
	assert := assert.New(t)

	var slept []time.Duration
	sys := &System{Sleeper: func(d time.Duration) { slept = append(slept, d) }}

	sys.Sleep(5 * time.Millisecond)
	sys.Sleep(0)
	sys.Sleep(-time.Second)

	assert.Equal([]time.Duration{5 * time.Millisecond}, slept)
}

func TestSystemPlatform(t *testing.T) {
	assert := assert.New(t)

	sys := NewSystem()
	id, version := sys.Platform()
	assert.Contains([]int32{PLATFORM_WINDOWS, PLATFORM_UNIX, PLATFORM_MACOSX, PLATFORM_OTHER}, id)
	assert.NotEmpty(version)
}
