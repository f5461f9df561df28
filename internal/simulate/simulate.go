// Package simulate holds the stand-ins for checks the site fakes: inventory
// availability and CAPTCHA. Services take them as interfaces so tests can pin
// the outcome.
package simulate

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

type Availability interface {
	Available(l domain.Listing) bool
}

type Captcha interface {
	Verify() bool
}

type AvailabilityFunc func(domain.Listing) bool

func (f AvailabilityFunc) Available(l domain.Listing) bool { return f(l) }

type CaptchaFunc func() bool

func (f CaptchaFunc) Verify() bool { return f() }

// AlwaysAvailable reports a listing available when its own flag says so.
var AlwaysAvailable = AvailabilityFunc(func(l domain.Listing) bool { return l.Available })

var AlwaysPass = CaptchaFunc(func() bool { return true })

type RandomAvailability struct {
	rate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAvailability passes each available listing with probability rate.
func NewRandomAvailability(rate float64, rng *rand.Rand) *RandomAvailability {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &RandomAvailability{rate: rate, rng: rng}
}

func (r *RandomAvailability) Available(l domain.Listing) bool {
	if !l.Available {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64() < r.rate
}

type RandomCaptcha struct {
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomCaptcha(failureRate float64, rng *rand.Rand) *RandomCaptcha {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 1))
	}
	return &RandomCaptcha{failureRate: failureRate, rng: rng}
}

func (c *RandomCaptcha) Verify() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64() >= c.failureRate
}

// Delay waits d or until ctx is done.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
