package roster

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
)

// requiredColumns must all be present in the roster header, exact names
var requiredColumns = []string{
	model.ColumnMachineName,
	model.ColumnUserName,
	model.ColumnDeliveryGroupName,
}

// Read parses assignment requests from a CSV roster. The first row is the
// header; missing required columns are a fatal error listing every absent
// name. Extra columns are ignored and field values are kept verbatim.
func Read(r io.Reader) ([]*model.AssignmentRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, goerr.New("roster is empty, expected a header row")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read roster header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, exists := index[name]; !exists {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, goerr.New("roster is missing required columns", goerr.V("missing", missing))
	}

	var requests []*model.AssignmentRequest
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read roster row", goerr.V("row", len(requests)+2))
		}

		requests = append(requests, &model.AssignmentRequest{
			MachineName:       field(row, index[model.ColumnMachineName]),
			UserName:          field(row, index[model.ColumnUserName]),
			DeliveryGroupName: field(row, index[model.ColumnDeliveryGroupName]),
		})
	}
	return requests, nil
}

// Load reads assignment requests from a roster file
func Load(path string) ([]*model.AssignmentRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open roster file", goerr.V("path", path))
	}
	defer f.Close()

	requests, err := Read(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse roster file", goerr.V("path", path))
	}
	return requests, nil
}

func field(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
