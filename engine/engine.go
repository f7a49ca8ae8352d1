package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-constants/engine/input"
	"github.com/Carmen-Shannon/oxy-constants/engine/profiler"
	"github.com/Carmen-Shannon/oxy-constants/engine/window"
)

// eventQueueSize is the number of input events buffered between the window thread and the tick goroutine.
const eventQueueSize = 256

// engine implements the Engine interface.
// Coordinates the window thread and the tick goroutine.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	// events carries input events from window callbacks to the tick goroutine.
	events chan any

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	inputCallback  func(event any)
}

// Engine is the main entry point for the engine.
// It owns the window and forwards its input events to a fixed-rate tick goroutine.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, nil if none was configured
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// Input events and the tick callback are processed at this rate.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, after queued input has been processed.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetInputCallback registers the function receiving every raw input event on the tick goroutine.
	// Events are input.KeyEvent, input.MouseButtonEvent, input.MouseMotionEvent, input.JoyButtonEvent
	// or input.JoyAxisEvent.
	//
	// Parameters:
	//   - callback: function receiving the event
	SetInputCallback(callback func(event any))

	// Run starts the engine loop (blocks until the window closes).
	// The engine takes over the window's update callback to close it on Quit.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// The engine takes over the window's input callbacks.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, tick rate)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		events:          make(chan any, eventQueueSize),
		wg:              sync.WaitGroup{},
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}
	if e.window != nil {
		e.window.SetKeyCallback(func(event input.KeyEvent) { e.push(event) })
		e.window.SetMouseButtonCallback(func(event input.MouseButtonEvent) { e.push(event) })
		e.window.SetMouseMotionCallback(func(event input.MouseMotionEvent) { e.push(event) })
		e.window.SetJoyButtonCallback(func(event input.JoyButtonEvent) { e.push(event) })
		e.window.SetJoyAxisCallback(func(event input.JoyAxisEvent) { e.push(event) })
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] no window configured, nothing to run")
		return
	}
	e.running.Store(true)
	e.window.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			if err := e.window.Close(); err != nil {
				log.Printf("[Engine] failed to close window: %v", err)
			}
		default:
		}
	})
	e.handle()
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
// The window is closed by the message loop on its own thread.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()
}

// push queues an input event for the tick goroutine. Events are dropped when the queue is full
// so the window thread never blocks.
func (e *engine) push(event any) {
	select {
	case e.events <- event:
	default:
		log.Printf("[Engine] input queue full, dropping %T", event)
	}
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Each tick drains the input queue, then fires the tick callback. Listens for dynamic rate changes
// via tickRateChannel and exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.drainEvents()

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}

			if e.profilingEnabled.Load() && e.profiler != nil {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// drainEvents processes every queued input event without blocking.
func (e *engine) drainEvents() {
	for {
		select {
		case event := <-e.events:
			e.processEvent(event)
		default:
			return
		}
	}
}

// processEvent delivers one input event to the input callback.
func (e *engine) processEvent(event any) {
	if e.profilingEnabled.Load() && e.profiler != nil {
		e.profiler.RecordEvent(eventKind(event))
	}
	if e.inputCallback != nil {
		e.inputCallback(event)
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if e.running.Load() {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetInputCallback(callback func(event any)) {
	e.inputCallback = callback
}

// eventKind names an input event for profiling.
func eventKind(event any) string {
	switch event.(type) {
	case input.KeyEvent:
		return "key"
	case input.MouseButtonEvent:
		return "mouse_button"
	case input.MouseMotionEvent:
		return "mouse_motion"
	case input.JoyButtonEvent:
		return "joy_button"
	case input.JoyAxisEvent:
		return "joy_axis"
	}
	return "other"
}
