package broker

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/domain/types"
)

// Memory implements BrokerClient with in-memory state. It stands in for the
// real broker when no broker URL is configured and throughout tests.
type Memory struct {
	mu       sync.RWMutex
	machines map[types.MachineUID]*model.Machine
	users    map[types.AccountName]*model.User
	assigned map[types.MachineUID]map[types.AccountName]struct{}
}

// NewMemory creates a new in-memory broker
func NewMemory() *Memory {
	return &Memory{
		machines: make(map[types.MachineUID]*model.Machine),
		users:    make(map[types.AccountName]*model.User),
		assigned: make(map[types.MachineUID]map[types.AccountName]struct{}),
	}
}

// AddMachine registers a machine and returns it. The UID is generated.
func (m *Memory) AddMachine(name types.MachineName, group types.GroupName) *model.Machine {
	m.mu.Lock()
	defer m.mu.Unlock()

	machine := &model.Machine{
		UID:          types.MachineUID(uuid.New().String()),
		Name:         name,
		DesktopGroup: group,
	}
	m.machines[machine.UID] = machine
	m.assigned[machine.UID] = make(map[types.AccountName]struct{})
	return machine
}

// AddUser registers a user account
func (m *Memory) AddUser(account types.AccountName) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[account] = &model.User{Name: account}
}

// FindMachine resolves a machine by name. A query without a domain prefix
// matches a fully-qualified machine by its short name, as the broker does.
func (m *Memory) FindMachine(ctx context.Context, name types.MachineName) (*model.Machine, error) {
	if name == "" {
		return nil, goerr.New("machine name is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, machine := range m.machines {
		if machine.Name == name || shortName(machine.Name) == string(name) {
			machineCopy := *machine
			return &machineCopy, nil
		}
	}
	return nil, goerr.Wrap(model.ErrMachineNotFound, "no machine matches name", goerr.V("machine", name))
}

// FindUser resolves a user account by exact name
func (m *Memory) FindUser(ctx context.Context, account types.AccountName) (*model.User, error) {
	if account == "" {
		return nil, goerr.New("account name is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[account]
	if !exists {
		return nil, goerr.Wrap(model.ErrUserNotFound, "no user matches account", goerr.V("account", account))
	}
	userCopy := *user
	return &userCopy, nil
}

// ListAssignedUsers returns the accounts assigned to a machine, sorted
func (m *Memory) ListAssignedUsers(ctx context.Context, uid types.MachineUID) ([]types.AccountName, error) {
	if uid == "" {
		return nil, goerr.New("machine UID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	set, exists := m.assigned[uid]
	if !exists {
		return nil, goerr.Wrap(model.ErrMachineNotFound, "unknown machine UID", goerr.V("uid", uid))
	}

	accounts := make([]types.AccountName, 0, len(set))
	for account := range set {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })
	return accounts, nil
}

// AssignUser binds an account to a machine
func (m *Memory) AssignUser(ctx context.Context, account types.AccountName, uid types.MachineUID) error {
	if account == "" {
		return goerr.New("account name is empty")
	}
	if uid == "" {
		return goerr.New("machine UID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	set, exists := m.assigned[uid]
	if !exists {
		return goerr.Wrap(model.ErrMachineNotFound, "unknown machine UID", goerr.V("uid", uid))
	}
	set[account] = struct{}{}
	return nil
}

// Close is a no-op for the in-memory broker
func (m *Memory) Close() error {
	return nil
}

// shortName strips the domain prefix from a fully-qualified machine name
func shortName(name types.MachineName) string {
	if idx := strings.LastIndex(string(name), `\`); idx >= 0 {
		return string(name)[idx+1:]
	}
	return string(name)
}
