package input

// State is one tick of input. Trigger holds the buttons that went down this
// tick; Hold holds every button that is currently down.
type State struct {
	Trigger Button
	Hold    Button
}

// Pressed reports whether b was triggered this tick.
func (s State) Pressed(b Button) bool {
	return s.Trigger.Has(b)
}

// Held reports whether every button in b is down.
func (s State) Held(b Button) bool {
	return s.Hold.Has(b)
}

// Tracker derives edge-triggered state from successive level snapshots, for
// sources that only report which buttons are down.
type Tracker struct {
	prev Button
}

// Next returns the State for the given held set relative to the previous call.
func (t *Tracker) Next(hold Button) State {
	s := State{
		Trigger: hold &^ t.prev,
		Hold:    hold,
	}
	t.prev = hold
	return s
}

// Reset forgets the previous snapshot.
func (t *Tracker) Reset() {
	t.prev = None
}
