package roster_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/service/roster"
)

func TestReadRoster(t *testing.T) {
	input := strings.Join([]string{
		"MachineName,UserName,DeliveryGroupName",
		`VDI-001,jdoe,Sales`,
		`VDI-002,CORP\asmith,Engineering`,
	}, "\n")

	requests, err := roster.Read(strings.NewReader(input))
	gt.NoError(t, err)
	gt.Equal(t, len(requests), 2)
	gt.Equal(t, requests[0], &model.AssignmentRequest{
		MachineName:       "VDI-001",
		UserName:          "jdoe",
		DeliveryGroupName: "Sales",
	})
	gt.Equal(t, requests[1].UserName, `CORP\asmith`)
}

func TestReadRosterColumnOrderAndExtras(t *testing.T) {
	input := strings.Join([]string{
		"Comment,DeliveryGroupName,MachineName,UserName",
		"ignore me,Sales,VDI-001,jdoe",
	}, "\n")

	requests, err := roster.Read(strings.NewReader(input))
	gt.NoError(t, err)
	gt.Equal(t, len(requests), 1)
	gt.Equal(t, requests[0].MachineName, "VDI-001")
	gt.Equal(t, requests[0].UserName, "jdoe")
	gt.Equal(t, requests[0].DeliveryGroupName, "Sales")
}

func TestReadRosterMissingColumns(t *testing.T) {
	input := strings.Join([]string{
		"MachineName,Owner",
		"VDI-001,jdoe",
	}, "\n")

	_, err := roster.Read(strings.NewReader(input))
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("missing required columns")
}

func TestReadRosterCaseSensitiveColumns(t *testing.T) {
	input := "machinename,username,deliverygroupname\nVDI-001,jdoe,Sales"

	_, err := roster.Read(strings.NewReader(input))
	gt.Error(t, err)
}

func TestReadRosterKeepsBlankFields(t *testing.T) {
	input := strings.Join([]string{
		"MachineName,UserName,DeliveryGroupName",
		"VDI-001,,Sales",
		",,",
	}, "\n")

	requests, err := roster.Read(strings.NewReader(input))
	gt.NoError(t, err)
	gt.Equal(t, len(requests), 2)
	gt.Equal(t, requests[0].UserName, "")
	gt.Equal(t, requests[1].MachineName, "")
}

func TestReadRosterEmpty(t *testing.T) {
	_, err := roster.Read(strings.NewReader(""))
	gt.Error(t, err)
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.csv")
	content := "MachineName,UserName,DeliveryGroupName\nVDI-001,jdoe,Sales\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	requests, err := roster.Load(path)
	gt.NoError(t, err)
	gt.Equal(t, len(requests), 1)

	_, err = roster.Load(filepath.Join(dir, "absent.csv"))
	gt.Error(t, err)
}
