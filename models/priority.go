package models

// PriorityType represents criticality/priority levels shared by
// projects, assets, vulnerabilities and tickets
type PriorityType string

const (
	PriorityCritical PriorityType = "Critical"
	PriorityHigh     PriorityType = "High"
	PriorityMedium   PriorityType = "Medium"
	PriorityLow      PriorityType = "Low"
)
