package pretty

import (
	"io"
	"iter"
)

// WriteIter renders each value from seq on its own line as it arrives. All
// values share one Renderer built from opts.
func WriteIter[T any](w io.Writer, seq iter.Seq[T], opts ...Option) error {
	r := New(opts...)
	var streamErr error
	seq(func(item T) bool {
		if _, err := io.WriteString(w, r.Render(item, 0)+"\n"); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan renders values from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, ch <-chan T, opts ...Option) error {
	return WriteIter(w, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
