package types

import "fmt"

// StatusCode classifies the outcome of a single assignment record
type StatusCode int

const (
	StatusUnknown StatusCode = iota
	StatusAssigned
	StatusSkippedMissingInfo
	StatusSkippedAlreadyAssigned
	StatusFailedMachineNotFound
	StatusFailedWrongGroup
	StatusFailedUserNotFound
	StatusFailedError
)

// StatusClass buckets outcomes for the run summary
type StatusClass int

const (
	ClassSuccess StatusClass = iota
	ClassSkipped
	ClassFailed
)

// Status is the final disposition of one assignment record. Detail carries
// the dynamic portion of the report string (actual group, error text) and is
// empty for fixed-string statuses.
type Status struct {
	Code   StatusCode
	Detail string
}

// NewAssigned creates a Status for a completed assignment
func NewAssigned() Status {
	return Status{Code: StatusAssigned}
}

// NewSkippedMissingInfo creates a Status for a record with blank fields
func NewSkippedMissingInfo() Status {
	return Status{Code: StatusSkippedMissingInfo}
}

// NewSkippedAlreadyAssigned creates a Status for a user already on the machine
func NewSkippedAlreadyAssigned() Status {
	return Status{Code: StatusSkippedAlreadyAssigned}
}

// NewFailedMachineNotFound creates a Status for an unresolvable machine
func NewFailedMachineNotFound() Status {
	return Status{Code: StatusFailedMachineNotFound}
}

// NewFailedWrongGroup creates a Status for a machine outside the requested
// delivery group. The actual group is kept in the detail for diagnostics.
func NewFailedWrongGroup(requested, actual GroupName) Status {
	return Status{
		Code:   StatusFailedWrongGroup,
		Detail: fmt.Sprintf("Machine not in delivery group '%s', current group is '%s'", requested, actual),
	}
}

// NewFailedUserNotFound creates a Status for an unresolvable user account
func NewFailedUserNotFound() Status {
	return Status{Code: StatusFailedUserNotFound}
}

// NewFailedError creates a Status carrying the underlying error text
func NewFailedError(err error) Status {
	return Status{Code: StatusFailedError, Detail: err.Error()}
}

// Class returns the summary bucket for the status
func (s Status) Class() StatusClass {
	switch s.Code {
	case StatusAssigned:
		return ClassSuccess
	case StatusSkippedMissingInfo, StatusSkippedAlreadyAssigned:
		return ClassSkipped
	default:
		return ClassFailed
	}
}

// String renders the status as it appears in the report
func (s Status) String() string {
	switch s.Code {
	case StatusAssigned:
		return "Success - Assigned"
	case StatusSkippedMissingInfo:
		return "Skipped - Missing required information"
	case StatusSkippedAlreadyAssigned:
		return "Skipped - User already assigned"
	case StatusFailedMachineNotFound:
		return "Failed - Machine not found"
	case StatusFailedWrongGroup, StatusFailedError:
		return "Failed - " + s.Detail
	case StatusFailedUserNotFound:
		return "Failed - User not found"
	default:
		return "Unknown"
	}
}
