package org

import "time"

const (
	dateLayout = "2006-01-02 Mon"
	timeLayout = "15:04"
)

// Timestamp is a date or a date with a time of day.
type Timestamp struct {
	Time    time.Time
	HasTime bool
}

// Date returns a date-only timestamp for t.
func Date(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

// DateTime returns a timestamp for t including hours and minutes.
func DateTime(t time.Time) *Timestamp {
	return &Timestamp{Time: t, HasTime: true}
}

// TimestampStyle selects the brackets wrapped around a formatted timestamp.
type TimestampStyle int

const (
	// Plain renders the bare timestamp
	Plain TimestampStyle = iota
	// Active renders <...>, which shows up in the agenda
	Active
	// Inactive renders [...]
	Inactive
)

// String renders the timestamp without brackets:
// 2024-01-02 Tue or 2024-01-02 Tue 10:30
func (ts Timestamp) String() string {
	s := ts.Time.Format(dateLayout)
	if ts.HasTime {
		s += " " + ts.Time.Format(timeLayout)
	}
	return s
}

// FormatTimestamp renders ts in the given style.
func FormatTimestamp(ts Timestamp, style TimestampStyle) string {
	switch style {
	case Active:
		return "<" + ts.String() + ">"
	case Inactive:
		return "[" + ts.String() + "]"
	default:
		return ts.String()
	}
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// ScheduledToday returns a date-only timestamp for the clock's current day.
func ScheduledToday(c Clock) *Timestamp {
	return Date(c.Now())
}

// CreatedProperty returns a CREATED property stamped with the clock's
// current time as an inactive timestamp.
func CreatedProperty(c Clock) Property {
	return Property{
		Name:  "CREATED",
		Value: FormatTimestamp(*DateTime(c.Now()), Inactive),
	}
}
