package domain

import "time"

// BugReportStatusNew is the only status this service ever writes; reports
// are append-only and triaged elsewhere.
const BugReportStatusNew = "new"

// BugReport is an append-only intake record bound to the reporter.
type BugReport struct {
	ID               string
	Description      string
	StepsToReproduce string
	Status           string
	ReporterID       string
	ReporterEmail    string
	CreatedAt        time.Time
}
