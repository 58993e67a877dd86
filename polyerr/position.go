package polyerr

import "fmt"

// Positioner allows finding the location of an error in the original expression.
type Positioner interface {
	Pos() int // byte offset of the first character
	End() int // byte offset of the first character immediately after
}

// Range represents a range of byte offsets in an expression.
type Range struct {
	PosStart int
	PosEnd   int
}

// Pos returns the starting offset of the range.
func (r Range) Pos() int { return r.PosStart }

// End returns the ending offset of the range.
func (r Range) End() int { return r.PosEnd }

// IsValid reports whether the range covers at least one character
func (r Range) IsValid() bool { return r.PosEnd > r.PosStart }

func (r Range) String() string {
	if r.PosEnd-r.PosStart <= 1 {
		return fmt.Sprintf("%v", r.PosStart)
	}
	return fmt.Sprintf("%v-%v", r.PosStart, r.PosEnd)
}

// RangeBetween creates a Range spanning two Positioners.
func RangeBetween(fst, snd Positioner) Range {
	return Range{fst.Pos(), snd.End()}
}

// Shift moves the range by offset, used when an expression is a slice of a larger one
func (r Range) Shift(offset int) Range {
	return Range{r.PosStart + offset, r.PosEnd + offset}
}
