package orderreaderv1

// Submission carries the raw whitespace-delimited tokens of one order
// submission, before any validation.
type Submission struct {
	Side     string
	Quantity string
	Price    string
}
