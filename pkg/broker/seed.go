package broker

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/vdi-ops/assignctl/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Seed describes the initial state of an in-memory broker, loaded from a
// YAML fixture
type Seed struct {
	Machines []SeedMachine `yaml:"machines"`
	Users    []string      `yaml:"users"`
}

// SeedMachine is one machine entry in a seed file
type SeedMachine struct {
	Name     string   `yaml:"name"`
	Group    string   `yaml:"group"`
	Assigned []string `yaml:"assigned"`
}

// LoadSeed reads and parses a broker seed file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read broker seed file", goerr.V("path", path))
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse broker seed file", goerr.V("path", path))
	}
	return &seed, nil
}

// NewMemoryFromSeed builds an in-memory broker pre-populated from a seed
func NewMemoryFromSeed(seed *Seed) (*Memory, error) {
	m := NewMemory()

	for _, account := range seed.Users {
		if account == "" {
			return nil, goerr.New("seed user account is empty")
		}
		m.AddUser(types.AccountName(account))
	}

	for _, sm := range seed.Machines {
		if sm.Name == "" {
			return nil, goerr.New("seed machine name is empty")
		}
		machine := m.AddMachine(types.MachineName(sm.Name), types.GroupName(sm.Group))
		for _, account := range sm.Assigned {
			if err := m.AssignUser(context.Background(), types.AccountName(account), machine.UID); err != nil {
				return nil, goerr.Wrap(err, "failed to seed assignment",
					goerr.V("machine", sm.Name),
					goerr.V("account", account),
				)
			}
		}
	}
	return m, nil
}
