package model

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vdi-ops/assignctl/pkg/domain/types"
)

// Roster column names. The input header must carry all three, exact match.
const (
	ColumnMachineName       = "MachineName"
	ColumnUserName          = "UserName"
	ColumnDeliveryGroupName = "DeliveryGroupName"
)

// AssignmentRequest is one roster record, kept verbatim as parsed. Fields may
// be empty or whitespace; validation happens in the reconciliation loop.
type AssignmentRequest struct {
	MachineName       string
	UserName          string
	DeliveryGroupName string
}

// MissingFields returns the column names of required fields that are empty or
// all-whitespace
func (r *AssignmentRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.MachineName) == "" {
		missing = append(missing, ColumnMachineName)
	}
	if strings.TrimSpace(r.UserName) == "" {
		missing = append(missing, ColumnUserName)
	}
	if strings.TrimSpace(r.DeliveryGroupName) == "" {
		missing = append(missing, ColumnDeliveryGroupName)
	}
	return missing
}

// AssignmentOutcome records the disposition of one roster record. Created
// exactly once per request and never mutated afterwards. UserName holds the
// normalized account when normalization occurred.
type AssignmentOutcome struct {
	MachineName       string
	UserName          string
	DeliveryGroupName string
	Status            types.Status
}

// NewAssignmentOutcome creates an outcome for a request. userName is the
// account name as it should appear in the report.
func NewAssignmentOutcome(req *AssignmentRequest, userName string, status types.Status) *AssignmentOutcome {
	return &AssignmentOutcome{
		MachineName:       req.MachineName,
		UserName:          userName,
		DeliveryGroupName: req.DeliveryGroupName,
		Status:            status,
	}
}

// LogValue returns structured log value
func (o AssignmentOutcome) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("machine", o.MachineName),
		slog.String("user", o.UserName),
		slog.String("group", o.DeliveryGroupName),
		slog.String("status", o.Status.String()),
	)
}

// Summary holds the run-level outcome counts
type Summary struct {
	Total    int
	Assigned int
	Skipped  int
	Failed   int
}

// Summarize counts outcomes by class
func Summarize(outcomes []*AssignmentOutcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status.Class() {
		case types.ClassSuccess:
			s.Assigned++
		case types.ClassSkipped:
			s.Skipped++
		case types.ClassFailed:
			s.Failed++
		}
	}
	return s
}

// String renders the human-readable summary line
func (s Summary) String() string {
	return fmt.Sprintf("processed %d: %d assigned, %d skipped, %d failed", s.Total, s.Assigned, s.Skipped, s.Failed)
}

// LogValue returns structured log value
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("total", s.Total),
		slog.Int("assigned", s.Assigned),
		slog.Int("skipped", s.Skipped),
		slog.Int("failed", s.Failed),
	)
}
