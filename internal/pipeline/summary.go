// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

// Result is the outcome of a single item.
type Result string

const (
	ResultCreated Result = "created"
	ResultUpdated Result = "updated"
	ResultSkipped Result = "skipped"
	ResultFailed  Result = "failed"
)

// Item is the outcome of a single configuration item.
type Item struct {
	Name   string
	Result Result
	Err    error
}

// Summary collects the outcome of a run, both in processing order and grouped by result.
type Summary struct {
	Items []Item

	Created []string
	Updated []string
	Skipped []string
	Failed  []string
}

// Processed returns the number of items created or updated.
func (s *Summary) Processed() int {
	return len(s.Created) + len(s.Updated)
}

func (s *Summary) add(name string, result Result, err error) {
	s.Items = append(s.Items, Item{Name: name, Result: result, Err: err})
	switch result {
	case ResultCreated:
		s.Created = append(s.Created, name)
	case ResultUpdated:
		s.Updated = append(s.Updated, name)
	case ResultSkipped:
		s.Skipped = append(s.Skipped, name)
	case ResultFailed:
		s.Failed = append(s.Failed, name)
	}
}
