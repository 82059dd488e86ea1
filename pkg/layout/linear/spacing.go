package linear

import "fmt"

// Spacing decides the extra distance between elements on the primary axis.
type Spacing interface {
	// Total converts the measured primary size of count elements into the
	// final layout size.
	Total(measured, count int) int
	// Offset returns the extra offset applied when placing element n of count.
	// measured is the primary size before spacing was applied.
	Offset(n, count, measured int) int
}

// Tight places elements right next to each other.
type Tight struct{}

func (Tight) Total(measured, _ int) int { return measured }

func (Tight) Offset(_, _, _ int) int { return 0 }

func (Tight) String() string { return "tight" }

// FixedMargin inserts a constant number of pixels between elements. A
// negative margin makes elements overlap.
type FixedMargin int

func (m FixedMargin) Total(measured, count int) int {
	if count == 0 {
		return measured
	}
	return measured + int(m)*(count-1)
}

func (m FixedMargin) Offset(n, _, _ int) int {
	if n == 0 {
		return 0
	}
	return int(m)
}

func (m FixedMargin) String() string { return fmt.Sprintf("fixed(%d)", int(m)) }

// DistributeFill stretches the layout to exactly the given primary size and
// spreads the difference evenly over the gaps. Leftover pixels go to the
// earliest gaps. Elements overlap when they do not fit.
type DistributeFill int

func (f DistributeFill) Total(_, _ int) int { return int(f) }

func (f DistributeFill) Offset(n, count, measured int) int {
	if n == 0 || count < 2 {
		return 0
	}
	empty := int(f) - measured
	gaps := count - 1
	base, rem := empty/gaps, empty%gaps
	if n <= rem {
		return base + 1
	}
	return base
}

func (f DistributeFill) String() string { return fmt.Sprintf("fill(%d)", int(f)) }
