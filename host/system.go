package host

import (
	"math/rand/v2"
	"time"
)

// Platform identifiers reported by Platform.
const (
	PLATFORM_WINDOWS = int32(2) // Windows NT
	PLATFORM_UNIX    = int32(4) // Unix
	PLATFORM_MACOSX  = int32(6) // macOS
	PLATFORM_OTHER   = int32(7) // other
)

// System provides the clock, random source and platform query.
type System struct {
	Rand    *rand.Rand          // Random source.
	Sleeper func(time.Duration) // Sleep implementation. Defaults to time.Sleep.
}

// NewSystem creates a system with a randomly seeded source.
func NewSystem() *System {
	return &System{
		Rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Seed makes the random source deterministic.
func (sys *System) Seed(seed uint64) {
	sys.Rand = rand.New(rand.NewPCG(seed, seed))
}

// Platform returns the host operating system identifier and version.
func (sys *System) Platform() (id int32, version string) {
	return platform()
}

// Random returns a value in [min, max). An empty range returns min.
func (sys *System) Random(min, max int32) int32 {
	if max <= min {
		return min
	}
	if sys.Rand == nil {
		sys.Seed(rand.Uint64())
	}
	return min + int32(sys.Rand.Int64N(int64(max)-int64(min)))
}

// Sleep suspends the caller.
func (sys *System) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	if sys.Sleeper != nil {
		sys.Sleeper(d)
		return
	}
	time.Sleep(d)
}
