package orderreader

import (
	"bufio"
	"io"

	orderreaderv1 "github.com/VickyakaKV/market-engine/internal/domain/order-reader/v1"
)

// Reader scans whitespace-delimited tokens from an input stream and
// groups them three at a time into submissions. Newlines carry no special
// meaning; a submission may span lines.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a reader over the given stream.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Reader{scanner: scanner}
}

// Next returns the next submission. It returns io.EOF at a clean end of
// stream and io.ErrUnexpectedEOF when the stream ends mid-submission.
func (r *Reader) Next() (orderreaderv1.Submission, error) {
	tokens := make([]string, 0, 3)
	for len(tokens) < 3 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return orderreaderv1.Submission{}, err
			}
			if len(tokens) > 0 {
				return orderreaderv1.Submission{}, io.ErrUnexpectedEOF
			}
			return orderreaderv1.Submission{}, io.EOF
		}
		tokens = append(tokens, r.scanner.Text())
	}

	return orderreaderv1.Submission{
		Side:     tokens[0],
		Quantity: tokens[1],
		Price:    tokens[2],
	}, nil
}
