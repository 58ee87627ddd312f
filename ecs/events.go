package ecs

// Channel is an event channel with per-reader cursors. Writers append events;
// every registered Reader consumes from its own position, so multiple systems
// can observe the same stream independently. Events are retained only until
// all registered readers have passed them, and a channel with no readers
// retains nothing across writes.
//
// Store a Channel as a singleton and declare Reader fields on consuming
// systems; the Scheduler wires them up during registration. Channels are not
// safe for concurrent use; all access happens on the scheduler's goroutine.
type Channel[T any] struct {
	buf     []T
	base    uint64
	cursors []uint64
}

// Write appends events to the channel.
func (c *Channel[T]) Write(events ...T) {
	c.trim()
	c.buf = append(c.buf, events...)
}

// Len returns the number of retained events.
func (c *Channel[T]) Len() int {
	return len(c.buf)
}

// end is the sequence number one past the newest event.
func (c *Channel[T]) end() uint64 {
	return c.base + uint64(len(c.buf))
}

// register adds a reader cursor positioned after all current events and
// returns its index. New readers only observe events written after
// registration.
func (c *Channel[T]) register() int {
	c.cursors = append(c.cursors, c.end())
	return len(c.cursors) - 1
}

// consume returns the events pending for the reader and advances its cursor.
func (c *Channel[T]) consume(reader int) []T {
	cursor := c.cursors[reader]
	if cursor >= c.end() {
		return nil
	}

	pending := c.buf[cursor-c.base:]
	out := make([]T, len(pending))
	copy(out, pending)
	c.cursors[reader] = c.end()
	return out
}

// trim drops the prefix of events every reader has consumed. A reader that
// is never drained pins the buffer, so systems must read every frame.
func (c *Channel[T]) trim() {
	low := c.end()
	for _, cursor := range c.cursors {
		if cursor < low {
			low = cursor
		}
	}
	if low == c.base {
		return
	}

	n := low - c.base
	c.buf = append(c.buf[:0], c.buf[n:]...)
	c.base = low
}

// Reader consumes events from the Channel[T] singleton of the same type.
// Declare Reader fields on system structs; the Scheduler initializes them
// during registration, creating the channel singleton if it does not exist
// yet.
type Reader[T any] struct {
	channel *Channel[T]
	index   int
}

// NewReader registers a reader on the given channel.
func NewReader[T any](channel *Channel[T]) *Reader[T] {
	return &Reader[T]{
		channel: channel,
		index:   channel.register(),
	}
}

// Init initializes the Reader against the Channel[T] singleton in storage.
// This is called automatically by the Scheduler during system registration.
func (r *Reader[T]) Init(storage *Storage) {
	channel := NewSingleton[Channel[T]](storage).Get()
	r.channel = channel
	r.index = channel.register()
}

// Read returns the events written since the previous Read and advances the
// reader past them.
func (r *Reader[T]) Read() []T {
	if r.channel == nil {
		return nil
	}
	return r.channel.consume(r.index)
}
