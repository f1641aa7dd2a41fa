package interfaces

//go:generate moq -out mocks/broker_mock.go -pkg mocks . BrokerClient

import (
	"context"

	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/domain/types"
)

// BrokerClient defines the operations this tool needs from the
// desktop-virtualization broker. All lookups are read-only; AssignUser is the
// only mutation.
type BrokerClient interface {
	// FindMachine resolves a machine by name. Returns
	// model.ErrMachineNotFound when the broker has no such machine.
	FindMachine(ctx context.Context, name types.MachineName) (*model.Machine, error)

	// FindUser resolves a user account by its normalized name. Returns
	// model.ErrUserNotFound when the broker has no such account.
	FindUser(ctx context.Context, account types.AccountName) (*model.User, error)

	// ListAssignedUsers returns the accounts currently assigned to a machine
	ListAssignedUsers(ctx context.Context, uid types.MachineUID) ([]types.AccountName, error)

	// AssignUser binds an account to a machine
	AssignUser(ctx context.Context, account types.AccountName, uid types.MachineUID) error

	// Close releases the broker connection
	Close() error
}
