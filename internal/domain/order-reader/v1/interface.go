package orderreaderv1

// Reader yields submissions one at a time from the input adapter.
type Reader interface {
	// Next blocks until a full submission is available. It returns io.EOF
	// once the input stream is exhausted.
	Next() (Submission, error)
}
