// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotform

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of SubmissionDate.Date.
const DateLayout = "2006-01-02"

// displayDateLayout is the operator-facing date format used in the
// review table.
const displayDateLayout = "01-02-2006"

// Status is the lifecycle state of a jotform. Values are
// self-describing strings that serialize directly to JSON. The wire
// type is open (the backend could send anything), so every decision
// point in the client normalizes unknown values to StatusOpen rather
// than branching on raw strings.
type Status string

const (
	// StatusOpen means the request has been received and nobody is
	// working on it yet.
	StatusOpen Status = "Open"

	// StatusInProgress means a technician has picked the request up.
	// In-progress jotforms sort before everything else in the review
	// table.
	StatusInProgress Status = "InProgress"

	// StatusClosed means the work is done. Closed jotforms stay in
	// the middle of the table (alongside open ones) so operators can
	// confirm recent completions without hunting for them.
	StatusClosed Status = "Closed"

	// StatusUnplanned means the request will not be acted on. Sorts
	// after everything else.
	StatusUnplanned Status = "Unplanned"
)

// Known reports whether s is one of the four defined Status values.
func (s Status) Known() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed, StatusUnplanned:
		return true
	}
	return false
}

// Next advances the status cycle: Open → InProgress → Closed →
// Unplanned → Open. Unknown input maps to StatusOpen, so four
// applications always return to the starting point regardless of
// what the backend sent.
func (s Status) Next() Status {
	switch s {
	case StatusOpen:
		return StatusInProgress
	case StatusInProgress:
		return StatusClosed
	case StatusClosed:
		return StatusUnplanned
	case StatusUnplanned:
		return StatusOpen
	default:
		return StatusOpen
	}
}

// ParseStatus converts a raw string into a Status, rejecting values
// outside the closed set. Used where statuses enter from operator
// input (mock-service requests, fixtures) rather than from the
// backend; backend values go through Known/Next normalization instead
// so a contract drift cannot crash the client.
func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.Known() {
		return "", fmt.Errorf("jotform: unknown status %q", value)
	}
	return status, nil
}

// Priority is the submitter-assigned urgency. Display styling only;
// the client never branches on it beyond theme lookup.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Department routes the request to a facility team. The set is open:
// new departments appear on the backend without client releases, and
// unknown values render with the default text style.
type Department string

const (
	DepartmentExhibits   Department = "Exhibits"
	DepartmentOperations Department = "Operations"
)

// SubmitterName is the name pair attached to a submission. The review
// table displays the first name only.
type SubmitterName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// SubmissionDate is the submission timestamp as the backend records
// it: a calendar date (DateLayout) plus an opaque time-of-day string.
// Only the date participates in ordering.
type SubmissionDate struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Jotform is one facility-maintenance request. Status is the only
// field the client mutates; everything else is display material.
type Jotform struct {
	// ID is the backend's identifier for the submission. Opaque,
	// unique for the session, and the key for selection tracking
	// and status updates.
	ID string `json:"id"`

	SubmitterName SubmitterName  `json:"submitter_name"`
	CreatedAt     SubmissionDate `json:"created_at"`

	// Location is where in the building the problem is.
	Location string `json:"location"`

	// ExhibitName is the affected exhibit, when the request concerns
	// one.
	ExhibitName string `json:"exhibit_name"`

	// Description is the submitter's free-text account of the
	// problem. Shown verbatim in the detail pane.
	Description string `json:"description"`

	PriorityLevel Priority   `json:"priority_level"`
	Department    Department `json:"department"`
	Status        Status     `json:"status"`
}

// SubmissionTime parses the submission date. The second return is
// false when the date does not parse; callers treat that as "older
// than everything" rather than an error (malformed data from the
// backend must not take the client down mid-sort).
func (f Jotform) SubmissionTime() (time.Time, bool) {
	parsed, err := time.Parse(DateLayout, f.CreatedAt.Date)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// DisplayDate reformats the submission date for the review table
// (MM-DD-YYYY). Malformed dates come back verbatim: display never
// fails, it just stops being pretty.
func (f Jotform) DisplayDate() string {
	parsed, ok := f.SubmissionTime()
	if !ok {
		return f.CreatedAt.Date
	}
	return parsed.Format(displayDateLayout)
}

// Validate checks the structural requirements the client relies on:
// a non-empty id, a status from the closed set, and a parseable
// submission date. The live client tolerates violations (unknown
// statuses normalize, bad dates get a sentinel sort position), so
// Validate is for the paths that should be strict: mock-service
// fixtures and tests.
func (f Jotform) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("jotform: id is required")
	}
	if !f.Status.Known() {
		return fmt.Errorf("jotform %s: unknown status %q", f.ID, f.Status)
	}
	if _, ok := f.SubmissionTime(); !ok {
		return fmt.Errorf("jotform %s: created_at.date %q is not %s", f.ID, f.CreatedAt.Date, DateLayout)
	}
	return nil
}
