package clock

import "time"

// Clock abstracts time so invoice dates and number tokens are testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Fixed always returns the same instant. Test helper.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }
