package summarizer

import "sync"

// Stream is a finite, non-restartable sequence of growing prefixes of the
// summary text. Consumers pull with Next until it reports false, then check
// Err: a nil error means the last prefix received is the complete text.
type Stream struct {
	ch chan string

	mu   sync.Mutex
	err  error
	last string
}

func newStream() *Stream {
	return &Stream{ch: make(chan string, 8)}
}

// Next blocks for the next prefix. ok is false once the stream has ended.
func (s *Stream) Next() (prefix string, ok bool) {
	prefix, ok = <-s.ch
	if ok {
		s.mu.Lock()
		s.last = prefix
		s.mu.Unlock()
	}
	return prefix, ok
}

// Err returns the terminal error, if any. Only meaningful after Next has
// reported false.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Text returns the longest prefix received so far; after a clean end this
// is the full summary.
func (s *Stream) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// send is called by producers with each successive prefix.
func (s *Stream) send(prefix string) {
	s.ch <- prefix
}

// finish ends the stream. err must be set before the channel closes so a
// consumer that saw ok=false always observes the terminal error.
func (s *Stream) finish(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	close(s.ch)
}
