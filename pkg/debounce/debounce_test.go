package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wmspro/wmsui/pkg/clock"
)

var epoch = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

func TestTrailingCallWins(t *testing.T) {
	c := clock.NewVirtual(epoch)
	var calls []string
	d := New(c, 100*time.Millisecond, func(q string) { calls = append(calls, q) })

	d("w")
	c.Advance(20 * time.Millisecond)
	d("wid")
	c.Advance(30 * time.Millisecond)
	d("widget")

	c.Advance(99 * time.Millisecond)
	assert.Empty(t, calls)

	c.Advance(time.Millisecond)
	assert.Equal(t, []string{"widget"}, calls)

	c.Advance(time.Second)
	assert.Len(t, calls, 1)
}

func TestSeparateWindowsFireSeparately(t *testing.T) {
	c := clock.NewVirtual(epoch)
	var calls []int
	d := New(c, 100*time.Millisecond, func(n int) { calls = append(calls, n) })

	d(1)
	c.Advance(150 * time.Millisecond)
	d(2)
	c.Advance(150 * time.Millisecond)

	assert.Equal(t, []int{1, 2}, calls)
}

func TestInstancesAreIndependent(t *testing.T) {
	c := clock.NewVirtual(epoch)
	var a, b int
	da := New(c, 100*time.Millisecond, func(n int) { a = n })
	db := New(c, 100*time.Millisecond, func(n int) { b = n })

	da(1)
	db(2)
	c.Advance(100 * time.Millisecond)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestFunc(t *testing.T) {
	c := clock.NewVirtual(epoch)
	var n int32
	d := Func(c, 50*time.Millisecond, func() { atomic.AddInt32(&n, 1) })

	d()
	d()
	c.Advance(50 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&n))
}

func TestRealClock(t *testing.T) {
	got := make(chan string, 3)
	d := New(clock.Real(), 20*time.Millisecond, func(s string) { got <- s })

	d("a")
	d("b")
	d("c")

	select {
	case s := <-got:
		assert.Equal(t, "c", s)
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}
	select {
	case s := <-got:
		t.Fatalf("unexpected extra call %q", s)
	case <-time.After(60 * time.Millisecond):
	}
}
