// Package debounce delays a function until calls to it stop arriving.
//
//	search := debounce.New(clock.Real(), 300*time.Millisecond, func(q string) {
//	    runSearch(q)
//	})
//	search("wid")
//	search("widget") // only this call runs, 300ms after it was made
package debounce

import (
	"sync"
	"time"

	"github.com/wmspro/wmsui/pkg/clock"
)

// New returns a function that invokes fn once wait has elapsed since the
// most recent call, with that call's argument. Every call restarts the
// window. There is no leading-edge invocation.
//
// Each returned function has its own timer and is safe for concurrent use.
func New[T any](sched clock.Scheduler, wait time.Duration, fn func(T)) func(T) {
	if sched == nil {
		sched = clock.Real()
	}
	var (
		mu      sync.Mutex
		pending clock.Timer
		gen     uint64
	)
	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if pending != nil {
			pending.Stop()
		}
		gen++
		mine := gen
		pending = sched.AfterFunc(wait, func() {
			mu.Lock()
			// A real timer may fire after Stop lost the race.
			if mine != gen {
				mu.Unlock()
				return
			}
			pending = nil
			mu.Unlock()
			fn(arg)
		})
	}
}

// Func is New for functions without arguments.
func Func(sched clock.Scheduler, wait time.Duration, fn func()) func() {
	d := New(sched, wait, func(struct{}) { fn() })
	return func() { d(struct{}{}) }
}
