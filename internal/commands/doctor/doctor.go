// Package doctor implements the health checks run by 'chatbox doctor'.
package doctor

import "context"

// Status is the outcome of a check item. Higher values are worse.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "ok"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CheckItem is one line of a check result.
type CheckItem struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Result is the outcome of one check. Status is the worst item status.
type Result struct {
	Name   string      `json:"name"`
	Status Status      `json:"status"`
	Items  []CheckItem `json:"items"`
}

func (r *Result) add(label string, status Status, detail string) {
	r.Items = append(r.Items, CheckItem{Label: label, Status: status, Detail: detail})
	r.Status = max(r.Status, status)
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// Report collects check results and counts checks by their overall status.
type Report struct {
	Checks []Result `json:"checks"`
	Passed int      `json:"passed"`
	Warned int      `json:"warned"`
	Failed int      `json:"failed"`
}

// Healthy reports whether no check failed. Warnings do not count.
func (r Report) Healthy() bool {
	return r.Failed == 0
}

// Run executes checks in order.
func Run(ctx context.Context, checks ...Check) Report {
	report := Report{Checks: make([]Result, 0, len(checks))}
	for _, check := range checks {
		result := check.Run(ctx)
		switch result.Status {
		case StatusPass:
			report.Passed++
		case StatusWarn:
			report.Warned++
		default:
			report.Failed++
		}
		report.Checks = append(report.Checks, result)
	}
	return report
}
