package clock

import "time"

// DateLayout is the wire format of every calendar day the API accepts.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type System struct{}

func NewSystem() Clock {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}

// Today formats the clock's current date in loc.
func Today(c Clock, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return c.Now().In(loc).Format(DateLayout)
}

// ParseDate reads a YYYY-MM-DD day as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func IsDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Fixed is a settable clock for tests and replays.
type Fixed struct {
	now time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (c *Fixed) Now() time.Time {
	return c.now
}

func (c *Fixed) Set(t time.Time) {
	c.now = t
}

func (c *Fixed) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
