// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package jotform

import (
	"cmp"
	"slices"

	schema "github.com/ljt019/jotview/lib/schema/jotform"
)

// Status buckets for the primary sort key. In-progress work leads the
// table and written-off work trails it. Open and closed share the
// middle bucket so recent completions stay next to the requests they
// answered.
const (
	bucketInProgress = 0
	bucketMiddle     = 1
	bucketUnplanned  = 2
)

// statusBucket maps a status to its sort bucket. Unknown statuses are
// normalized to open by the status machine, so they belong in the
// middle bucket here too.
func statusBucket(status schema.Status) int {
	switch status {
	case schema.StatusInProgress:
		return bucketInProgress
	case schema.StatusUnplanned:
		return bucketUnplanned
	default:
		return bucketMiddle
	}
}

// Compare defines the total order of the review table: status bucket
// first, then submission date descending (newest first). A jotform
// whose date does not parse sorts after every dated jotform in its
// bucket (the sentinel "oldest" position) instead of poisoning the
// sort with an error. Equal keys compare as 0; Sort is stable, so
// their relative order is the input order.
func Compare(a, b schema.Jotform) int {
	if c := cmp.Compare(statusBucket(a.Status), statusBucket(b.Status)); c != 0 {
		return c
	}

	aTime, aOK := a.SubmissionTime()
	bTime, bOK := b.SubmissionTime()
	switch {
	case aOK && bOK:
		return bTime.Compare(aTime)
	case aOK:
		return -1
	case bOK:
		return 1
	default:
		return 0
	}
}

// Sort orders forms in place per Compare. Stable: sorting an already
// sorted slice changes nothing, and date ties keep their encounter
// order.
func Sort(forms []schema.Jotform) {
	slices.SortStableFunc(forms, Compare)
}
