package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/Carmen-Shannon/oxy-constants/engine/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, options ...EngineBuilderOption) *engine {
	t.Helper()
	e, ok := NewEngine(options...).(*engine)
	require.True(t, ok)
	return e
}

func TestNewEngineOptions(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.Window())
	assert.Equal(t, time.Second/60, e.engineTickRate)
	assert.False(t, e.profilingEnabled.Load())

	e = newTestEngine(t, WithTickRate(250), WithProfiling(true))
	assert.Equal(t, 4*time.Millisecond, e.engineTickRate)
	assert.True(t, e.profilingEnabled.Load())
	e.DisableProfiler()
	assert.False(t, e.profilingEnabled.Load())
	e.EnableProfiler()
	assert.True(t, e.profilingEnabled.Load())

	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.engineTickRate)
	e.SetTickRate(100)
	assert.Equal(t, 10*time.Millisecond, e.engineTickRate)

	// without a window there is nothing to run
	e.Run()
}

func TestProcessEventDeliversInOrder(t *testing.T) {
	e := newTestEngine(t, WithProfiling(true))

	var got []any
	e.SetInputCallback(func(event any) { got = append(got, event) })

	events := []any{
		input.KeyEvent{Key: common.KeySpace, Pressed: true},
		input.MouseButtonEvent{Button: common.MouseButtonLeft, ButtonMask: common.MouseButtonMaskLeft, Pressed: true},
		input.MouseMotionEvent{X: 4, Y: 2, RelX: 1},
		input.JoyButtonEvent{Button: common.JoyButtonA, Pressed: true},
		input.JoyAxisEvent{Axis: common.JoyAxisTriggerLeft, Value: 0.5},
	}
	for _, ev := range events {
		e.push(ev)
	}
	e.drainEvents()

	assert.Equal(t, events, got)
	assert.Empty(t, e.events)
}

func TestPushDropsWhenFull(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < eventQueueSize+10; i++ {
		e.push(input.MouseMotionEvent{X: int32(i)})
	}
	assert.Len(t, e.events, eventQueueSize)

	var n int
	var first input.MouseMotionEvent
	e.SetInputCallback(func(event any) {
		if n == 0 {
			first = event.(input.MouseMotionEvent)
		}
		n++
	})
	e.drainEvents()
	assert.Equal(t, eventQueueSize, n)
	assert.Equal(t, int32(0), first.X)
}

func TestTickLoopDeliversQueuedInput(t *testing.T) {
	e := newTestEngine(t, WithTickRate(500))

	var mu sync.Mutex
	var got []any
	e.SetInputCallback(func(event any) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, event)
	})

	ticked := make(chan float32, 1)
	e.SetTickCallback(func(dt float32) {
		select {
		case ticked <- dt:
		default:
		}
	})

	e.push(input.KeyEvent{Key: common.KeyEscape, Pressed: true})
	e.handle()

	select {
	case dt := <-ticked:
		assert.Greater(t, dt, float32(0))
	case <-time.After(2 * time.Second):
		t.Fatal("tick callback never ran")
	}
	e.Quit()
	e.Quit()
	e.wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []any{input.KeyEvent{Key: common.KeyEscape, Pressed: true}}, got)
}

func TestTickLoopRecoversFromPanic(t *testing.T) {
	e := newTestEngine(t, WithTickRate(500))
	e.SetTickCallback(func(float32) { panic("boom") })
	e.handle()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop after panic")
	}
}

func TestEventKind(t *testing.T) {
	assert.Equal(t, "key", eventKind(input.KeyEvent{}))
	assert.Equal(t, "mouse_button", eventKind(input.MouseButtonEvent{}))
	assert.Equal(t, "mouse_motion", eventKind(input.MouseMotionEvent{}))
	assert.Equal(t, "joy_button", eventKind(input.JoyButtonEvent{}))
	assert.Equal(t, "joy_axis", eventKind(input.JoyAxisEvent{}))
	assert.Equal(t, "other", eventKind(42))
}

func TestFlagsAreSafeAcrossGoroutines(t *testing.T) {
	e := newTestEngine(t, WithTickRate(500))
	e.running.Store(true)
	e.SetTickCallback(func(float32) { panic("stop") })
	e.handle()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			e.SetTickRate(float64(100 + i))
			e.EnableProfiler()
			e.DisableProfiler()
		}
	}()
	wg.Wait()
	e.wg.Wait()

	assert.False(t, e.running.Load())
	assert.False(t, e.profilingEnabled.Load())
}
