package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
)

// header of the report CSV. UserName holds the normalized account when
// normalization occurred during reconciliation.
var header = []string{
	model.ColumnMachineName,
	model.ColumnUserName,
	model.ColumnDeliveryGroupName,
	"Status",
}

// Write renders outcomes as a CSV report, one row per input record in input
// order
func Write(w io.Writer, outcomes []*model.AssignmentOutcome) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return goerr.Wrap(err, "failed to write report header")
	}
	for _, o := range outcomes {
		row := []string{o.MachineName, o.UserName, o.DeliveryGroupName, o.Status.String()}
		if err := writer.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write report row", goerr.V("machine", o.MachineName))
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush report")
	}
	return nil
}

// Save writes the report to a file
func Save(path string, outcomes []*model.AssignmentOutcome) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create report file", goerr.V("path", path))
	}
	defer f.Close()

	if err := Write(f, outcomes); err != nil {
		return goerr.Wrap(err, "failed to write report file", goerr.V("path", path))
	}
	return nil
}

// DefaultPath builds the timestamped report path beside the input roster
func DefaultPath(rosterPath string, now time.Time) string {
	name := fmt.Sprintf("assignment-report-%s.csv", now.Format("20060102-150405"))
	return filepath.Join(filepath.Dir(rosterPath), name)
}
