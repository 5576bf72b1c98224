// Package models defines the domain types shared across the cograph layers.
package models

import "time"

// DayLayout is the calendar-date layout used for record days everywhere:
// input CSV, rendered labels, JSON reports and the run archive.
const DayLayout = "2006-01-02"

// Record is a single validated observation: an area seen on a calendar day.
// The ingest layer owns parsing and validation; by the time a Record reaches
// the graph builder, Day is a UTC midnight timestamp and Area is non-empty.
type Record struct {
	Day  time.Time `json:"day"`
	Area string    `json:"area"`
}
