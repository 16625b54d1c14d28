package hud

import "sync"

// Recorder is an in-memory Sink that keeps every frame it is given.
// Fail makes the next Create calls return ErrUnavailable.
type Recorder struct {
	mu      sync.Mutex
	frames  []string
	created int
	closed  int
	fail    int
	open    *recordedHandle
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Fail makes the next n calls to Create fail.
func (r *Recorder) Fail(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = n
}

// Create records initial as the first frame of a new handle.
func (r *Recorder) Create(initial string) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail > 0 {
		r.fail--
		return nil, &Error{Op: "create", Err: ErrUnavailable}
	}

	r.created++
	r.frames = append(r.frames, initial)
	h := &recordedHandle{rec: r}
	r.open = h
	return h, nil
}

// Frames returns a copy of every frame shown so far.
func (r *Recorder) Frames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...)
}

// Last returns the most recent frame, or "" if none.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return ""
	}
	return r.frames[len(r.frames)-1]
}

// Visible reports whether a handle is currently open.
func (r *Recorder) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open != nil
}

// Created returns how many handles were successfully created.
func (r *Recorder) Created() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created
}

// Closed returns how many handles were closed.
func (r *Recorder) Closed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

type recordedHandle struct {
	rec    *Recorder
	closed bool
}

func (h *recordedHandle) SetText(text string) error {
	h.rec.mu.Lock()
	defer h.rec.mu.Unlock()
	if h.closed {
		return &Error{Op: "set text", Err: ErrClosed}
	}
	h.rec.frames = append(h.rec.frames, text)
	return nil
}

func (h *recordedHandle) Close() error {
	h.rec.mu.Lock()
	defer h.rec.mu.Unlock()
	if h.closed {
		return &Error{Op: "close", Err: ErrClosed}
	}
	h.closed = true
	h.rec.closed++
	if h.rec.open == h {
		h.rec.open = nil
	}
	return nil
}
