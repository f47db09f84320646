package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func span(start, end string) DateRange {
	return DateRange{Start: day(start), End: day(end)}
}

func TestDateRange_Overlaps(t *testing.T) {
	booked := span("2024-01-10", "2024-01-20")

	tests := []struct {
		name    string
		request DateRange
		want    bool
	}{
		{"starts inside", span("2024-01-15", "2024-01-25"), true},
		{"ends inside", span("2024-01-05", "2024-01-12"), true},
		{"encloses", span("2024-01-01", "2024-01-31"), true},
		{"inside", span("2024-01-12", "2024-01-14"), true},
		{"identical", span("2024-01-10", "2024-01-20"), true},
		{"starts on booked end", span("2024-01-20", "2024-01-22"), true},
		{"ends on booked start", span("2024-01-08", "2024-01-10"), true},
		{"entirely before", span("2024-01-01", "2024-01-09"), false},
		{"entirely after", span("2024-01-21", "2024-01-25"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.request.Overlaps(booked))
			// the relation is symmetric for inclusive ranges
			assert.Equal(t, tt.want, booked.Overlaps(tt.request))
		})
	}
}

func TestDateRange_ValidAndDays(t *testing.T) {
	assert.True(t, span("2024-01-10", "2024-01-12").Valid())
	assert.Equal(t, 2, span("2024-01-10", "2024-01-12").Days())
	assert.Equal(t, 29, span("2024-02-01", "2024-03-01").Days())
	assert.Equal(t, 3652058, span("0001-01-01", "9999-12-31").Days())
	assert.Equal(t, 146097, span("1700-01-01", "2100-01-01").Days())
	assert.Equal(t, -2, day("2024-01-12").DaysUntil(day("2024-01-10")))

	assert.False(t, span("2024-01-10", "2024-01-10").Valid())
	assert.False(t, span("2024-01-12", "2024-01-10").Valid())
}

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		from   string
		months int
		want   string
	}{
		{"2024-08-31", -6, "2024-02-29"},
		{"2023-08-31", -6, "2023-02-28"},
		{"2024-07-15", -6, "2024-01-15"},
		{"2024-03-31", -1, "2024-02-29"},
		{"2024-01-31", 1, "2024-02-29"},
		{"2024-05-10", -6, "2023-11-10"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			assert.Equal(t, tt.want, day(tt.from).AddMonths(tt.months).String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	b, err := json.Marshal(span("2024-01-10", "2024-01-12"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"startDate":"2024-01-10","endDate":"2024-01-12"}`, string(b))

	var r DateRange
	require.NoError(t, json.Unmarshal([]byte(`{"startDate":"2024-03-01","endDate":"2024-03-04"}`), &r))
	assert.Equal(t, 3, r.Days())

	assert.Error(t, json.Unmarshal([]byte(`{"startDate":"03/01/2024"}`), &r))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-10", d.String())

	require.NoError(t, d.Scan("2024-02-11"))
	assert.Equal(t, "2024-02-11", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-12T00:00:00Z")))
	assert.Equal(t, "2024-03-12", d.String())

	assert.Error(t, d.Scan(42))

	v, err := day("2024-01-10").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", v)
}

func TestDateOf_DropsClock(t *testing.T) {
	d := DateOf(time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, NewDate(2024, time.January, 10), d)
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "Zara", NormalizeWord("zARA"))
	assert.Equal(t, "Tshirt", NormalizeWord(" TSHIRT "))
	assert.Equal(t, "", NormalizeWord("  "))
}
