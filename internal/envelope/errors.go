package envelope

import "fmt"

// DataError reports envelope samples an interpolant cannot be built from
type DataError struct {
	msg string
}

func (e *DataError) Error() string {
	return e.msg
}

// RangeError reports a query outside the sampled heights
type RangeError struct {
	Y   float64 // Queried height (m)
	Min float64 // Lowest sampled height (m)
	Max float64 // Highest sampled height (m)
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("height %.4f m outside the envelope range [%.4f, %.4f] m", e.Y, e.Min, e.Max)
}
