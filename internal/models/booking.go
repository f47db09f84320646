package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day. The wrapped time is always midnight UTC.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Compare(o Date) int {
	return d.Time.Compare(o.Time)
}

// DaysUntil returns the number of whole days from d to o (negative if o is earlier).
func (d Date) DaysUntil(o Date) int {
	const secondsPerDay = 24 * 60 * 60
	return int((o.Unix() - d.Unix()) / secondsPerDay)
}

// AddMonths moves d by n calendar months, clamping the day to the last day
// of the target month (Aug 31 - 6 months = Feb 28/29).
func (d Date) AddMonths(n int) Date {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return NewDate(first.Year(), first.Month(), day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores dates as ISO text, which both postgres DATE and sqlite accept.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v.UTC())
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	case nil:
		*d = Date{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d *Date) scanText(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive span of days. A valid range ends strictly after it starts.
type DateRange struct {
	Start Date `json:"startDate"`
	End   Date `json:"endDate"`
}

func (r DateRange) Valid() bool {
	return r.End.After(r.Start.Time)
}

// Days is the rental length, end minus start.
func (r DateRange) Days() int {
	return r.Start.DaysUntil(r.End)
}

// Overlaps reports whether r conflicts with an existing range o: r starts
// inside o, r ends inside o, or r encloses o. Touching endpoints conflict.
func (r DateRange) Overlaps(o DateRange) bool {
	startsInside := o.Start.Compare(r.Start) <= 0 && r.Start.Compare(o.End) <= 0
	endsInside := o.Start.Compare(r.End) <= 0 && r.End.Compare(o.End) <= 0
	encloses := r.Start.Compare(o.Start) <= 0 && o.End.Compare(r.End) <= 0
	return startsInside || endsInside || encloses
}

type Booking struct {
	ID        int64     `json:"id" db:"id"`
	Reference string    `json:"reference" db:"reference"`
	ItemID    int64     `json:"itemId" db:"item_id"`
	RenterID  int64     `json:"renterId" db:"renter_id"`
	StartDate Date      `json:"startDate" db:"start_date"`
	EndDate   Date      `json:"endDate" db:"end_date"`
	Credits   int64     `json:"credits" db:"credits"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (b Booking) Period() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}
