package input

// Tracker accumulates raw events between frames and folds them into the
// frame's semantic states. Keys and mouse buttons are tracked as separate
// namespaces; both surface through the common Input type.
//
// A Tracker is not safe for concurrent use. The platform registers events and
// calculates state from the same loop.
type Tracker struct {
	pressedKeys    map[Key]struct{}
	pressedButtons map[Button]struct{}
	queue          []RawEvent
	pointer        Pointer
}

// NewTracker creates a tracker with the pointer at the origin.
func NewTracker() *Tracker {
	return NewTrackerAt(Pointer{})
}

// NewTrackerAt creates a tracker with a known initial pointer position.
func NewTrackerAt(p Pointer) *Tracker {
	return &Tracker{
		pressedKeys:    make(map[Key]struct{}),
		pressedButtons: make(map[Button]struct{}),
		pointer:        p,
	}
}

// RegisterEvent queues a raw event for the next CalculateState call.
func (t *Tracker) RegisterEvent(e RawEvent) {
	t.queue = append(t.queue, e)
}

// Pending returns the number of queued events.
func (t *Tracker) Pending() int {
	return len(t.queue)
}

// Held reports whether the input is currently held down.
// Scroll inputs are never held.
func (t *Tracker) Held(i Input) bool {
	switch i.Kind {
	case KindKey:
		_, ok := t.pressedKeys[i.Key]
		return ok
	case KindMouseLeft:
		_, ok := t.pressedButtons[ButtonLeft]
		return ok
	case KindMouseRight:
		_, ok := t.pressedButtons[ButtonRight]
		return ok
	case KindMouseMiddle:
		_, ok := t.pressedButtons[ButtonMiddle]
		return ok
	default:
		return false
	}
}

// CalculateState drains the queue in arrival order and returns this frame's
// states together with the latest pointer position.
//
// A press of an input that is not held emits Press and Active; repeated
// presses of a held input emit nothing. A release always emits Release.
// Scroll emits Press only. Inputs held before the frame and not released
// during it emit Active.
func (t *Tracker) CalculateState() (StateSet, Pointer) {
	states := make(StateSet)

	stillKeys := make(map[Key]struct{}, len(t.pressedKeys))
	for k := range t.pressedKeys {
		stillKeys[k] = struct{}{}
	}
	stillButtons := make(map[Button]struct{}, len(t.pressedButtons))
	for b := range t.pressedButtons {
		stillButtons[b] = struct{}{}
	}

	for _, e := range t.queue {
		if e.isMouse() {
			t.pointer = Pointer{X: e.X, Y: e.Y}
		}

		switch e.Type {
		case EventKeyPress:
			if e.Key == "" {
				continue
			}
			if _, held := t.pressedKeys[e.Key]; !held {
				in := KeyInput(e.Key)
				states.add(Press(in))
				states.add(Active(in))
				t.pressedKeys[e.Key] = struct{}{}
			}

		case EventKeyRelease:
			if e.Key == "" {
				continue
			}
			states.add(Release(KeyInput(e.Key)))
			delete(t.pressedKeys, e.Key)
			delete(stillKeys, e.Key)

		case EventMousePress:
			in, ok := e.Button.input()
			if !ok {
				continue
			}
			if _, held := t.pressedButtons[e.Button]; !held {
				states.add(Press(in))
				states.add(Active(in))
				t.pressedButtons[e.Button] = struct{}{}
			}

		case EventMouseRelease:
			in, ok := e.Button.input()
			if !ok {
				continue
			}
			states.add(Release(in))
			delete(t.pressedButtons, e.Button)
			delete(stillButtons, e.Button)

		case EventScroll:
			if in, ok := e.Scroll.input(); ok {
				states.add(Press(in))
			}

		case EventMouseMove:
			// Pointer already updated.

		default:
			// Unknown event types are dropped.
		}
	}
	t.queue = t.queue[:0]

	for k := range stillKeys {
		states.add(Active(KeyInput(k)))
	}
	for b := range stillButtons {
		if in, ok := b.input(); ok {
			states.add(Active(in))
		}
	}

	return states, t.pointer
}
