package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/domain/types"
)

func TestMissingFields(t *testing.T) {
	t.Run("complete record has no missing fields", func(t *testing.T) {
		req := &model.AssignmentRequest{MachineName: "VDI-001", UserName: "jdoe", DeliveryGroupName: "Sales"}
		gt.Equal(t, len(req.MissingFields()), 0)
	})

	t.Run("whitespace counts as missing", func(t *testing.T) {
		req := &model.AssignmentRequest{MachineName: "  ", UserName: "jdoe", DeliveryGroupName: "Sales"}
		gt.Equal(t, req.MissingFields(), []string{model.ColumnMachineName})
	})

	t.Run("all fields empty", func(t *testing.T) {
		req := &model.AssignmentRequest{}
		gt.Equal(t, req.MissingFields(), []string{
			model.ColumnMachineName,
			model.ColumnUserName,
			model.ColumnDeliveryGroupName,
		})
	})
}

func TestSummarize(t *testing.T) {
	req := &model.AssignmentRequest{MachineName: "VDI-001", UserName: "jdoe", DeliveryGroupName: "Sales"}

	outcomes := []*model.AssignmentOutcome{
		model.NewAssignmentOutcome(req, `CORP\jdoe`, types.NewAssigned()),
		model.NewAssignmentOutcome(req, `CORP\jdoe`, types.NewSkippedAlreadyAssigned()),
		model.NewAssignmentOutcome(req, "jdoe", types.NewSkippedMissingInfo()),
		model.NewAssignmentOutcome(req, "jdoe", types.NewFailedMachineNotFound()),
	}

	summary := model.Summarize(outcomes)
	gt.Equal(t, summary.Total, 4)
	gt.Equal(t, summary.Assigned, 1)
	gt.Equal(t, summary.Skipped, 2)
	gt.Equal(t, summary.Failed, 1)
	gt.Equal(t, summary.String(), "processed 4: 1 assigned, 2 skipped, 1 failed")
}
