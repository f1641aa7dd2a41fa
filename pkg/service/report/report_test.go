package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/domain/types"
	"github.com/vdi-ops/assignctl/pkg/service/report"
)

func TestWriteReport(t *testing.T) {
	req := &model.AssignmentRequest{MachineName: "VDI-001", UserName: "jdoe", DeliveryGroupName: "Sales"}
	outcomes := []*model.AssignmentOutcome{
		model.NewAssignmentOutcome(req, `CORP\jdoe`, types.NewAssigned()),
		model.NewAssignmentOutcome(req, "jdoe", types.NewFailedWrongGroup("Sales", "Engineering")),
	}

	var buf bytes.Buffer
	gt.NoError(t, report.Write(&buf, outcomes))

	lines := buf.String()
	gt.S(t, lines).Contains("MachineName,UserName,DeliveryGroupName,Status\n")
	gt.S(t, lines).Contains(`VDI-001,CORP\jdoe,Sales,Success - Assigned` + "\n")
	gt.S(t, lines).Contains("Machine not in delivery group 'Sales', current group is 'Engineering'")
}

func TestWriteReportPreservesOrder(t *testing.T) {
	reqA := &model.AssignmentRequest{MachineName: "VDI-A", UserName: "a", DeliveryGroupName: "G"}
	reqB := &model.AssignmentRequest{MachineName: "VDI-B", UserName: "b", DeliveryGroupName: "G"}
	outcomes := []*model.AssignmentOutcome{
		model.NewAssignmentOutcome(reqA, "a", types.NewFailedMachineNotFound()),
		model.NewAssignmentOutcome(reqB, "b", types.NewAssigned()),
	}

	var buf bytes.Buffer
	gt.NoError(t, report.Write(&buf, outcomes))

	idxA := bytes.Index(buf.Bytes(), []byte("VDI-A"))
	idxB := bytes.Index(buf.Bytes(), []byte("VDI-B"))
	gt.B(t, idxA >= 0 && idxB >= 0 && idxA < idxB).True()
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2026, 8, 27, 14, 30, 5, 0, time.UTC)
	path := report.DefaultPath(filepath.Join("data", "roster.csv"), now)
	gt.Equal(t, path, filepath.Join("data", "assignment-report-20260827-143005.csv"))
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")

	req := &model.AssignmentRequest{MachineName: "VDI-001", UserName: "jdoe", DeliveryGroupName: "Sales"}
	outcomes := []*model.AssignmentOutcome{
		model.NewAssignmentOutcome(req, `CORP\jdoe`, types.NewAssigned()),
	}

	gt.NoError(t, report.Save(path, outcomes))

	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.S(t, string(data)).Contains("Success - Assigned")
}
