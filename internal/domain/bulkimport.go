package domain

import "fmt"

// ImportRowResult is the per-row outcome of a bulk upload: either the
// row committed (possibly with warnings about ignored categories) or
// it was skipped with a reason. One variant per row, never both.
type ImportRowResult struct {
	Line      int
	Committed bool
	Reason    string
	Warnings  []string
}

// ImportReport aggregates the row results of one CSV upload.
// Messages preserves input order and carries the 1-based CSV line
// number of every warning and failure.
type ImportReport struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Messages     []string `json:"errors"`
}

func (r *ImportReport) Add(res ImportRowResult) {
	if res.Committed {
		r.SuccessCount++
	} else {
		r.FailureCount++
		r.Messages = append(r.Messages, fmt.Sprintf("行 %d: %s", res.Line, res.Reason))
	}
	for _, w := range res.Warnings {
		r.Messages = append(r.Messages, fmt.Sprintf("行 %d: %s", res.Line, w))
	}
}
