package broker_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vdi-ops/assignctl/pkg/broker"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/domain/types"
)

func TestMemoryFindMachine(t *testing.T) {
	ctx := context.Background()
	mem := broker.NewMemory()
	mem.AddMachine(`CORP\VDI-001`, "Sales")

	t.Run("matches fully-qualified name", func(t *testing.T) {
		machine, err := mem.FindMachine(ctx, `CORP\VDI-001`)
		gt.NoError(t, err)
		gt.Equal(t, machine.DesktopGroup, types.GroupName("Sales"))
	})

	t.Run("matches short name", func(t *testing.T) {
		machine, err := mem.FindMachine(ctx, "VDI-001")
		gt.NoError(t, err)
		gt.Equal(t, machine.Name, types.MachineName(`CORP\VDI-001`))
	})

	t.Run("unknown machine returns sentinel", func(t *testing.T) {
		_, err := mem.FindMachine(ctx, "VDI-404")
		gt.Error(t, err)
		gt.B(t, errors.Is(err, model.ErrMachineNotFound)).True()
	})
}

func TestMemoryFindUser(t *testing.T) {
	ctx := context.Background()
	mem := broker.NewMemory()
	mem.AddUser(`CORP\jdoe`)

	user, err := mem.FindUser(ctx, `CORP\jdoe`)
	gt.NoError(t, err)
	gt.Equal(t, user.Name, types.AccountName(`CORP\jdoe`))

	_, err = mem.FindUser(ctx, `CORP\nobody`)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, model.ErrUserNotFound)).True()
}

func TestMemoryAssignAndList(t *testing.T) {
	ctx := context.Background()
	mem := broker.NewMemory()
	machine := mem.AddMachine(`CORP\VDI-001`, "Sales")

	assigned, err := mem.ListAssignedUsers(ctx, machine.UID)
	gt.NoError(t, err)
	gt.Equal(t, len(assigned), 0)

	gt.NoError(t, mem.AssignUser(ctx, `CORP\jdoe`, machine.UID))
	gt.NoError(t, mem.AssignUser(ctx, `CORP\asmith`, machine.UID))

	assigned, err = mem.ListAssignedUsers(ctx, machine.UID)
	gt.NoError(t, err)
	gt.Equal(t, assigned, []types.AccountName{`CORP\asmith`, `CORP\jdoe`})

	err = mem.AssignUser(ctx, `CORP\jdoe`, "no-such-uid")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, model.ErrMachineNotFound)).True()
}

func TestSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yml")
	content := `
machines:
  - name: CORP\VDI-001
    group: Sales
    assigned:
      - CORP\asmith
  - name: CORP\VDI-002
    group: Engineering
users:
  - CORP\jdoe
  - CORP\asmith
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	seed, err := broker.LoadSeed(path)
	gt.NoError(t, err)
	gt.Equal(t, len(seed.Machines), 2)
	gt.Equal(t, len(seed.Users), 2)

	mem, err := broker.NewMemoryFromSeed(seed)
	gt.NoError(t, err)

	ctx := context.Background()
	machine, err := mem.FindMachine(ctx, "VDI-001")
	gt.NoError(t, err)

	assigned, err := mem.ListAssignedUsers(ctx, machine.UID)
	gt.NoError(t, err)
	gt.Equal(t, assigned, []types.AccountName{`CORP\asmith`})

	_, err = mem.FindUser(ctx, `CORP\jdoe`)
	gt.NoError(t, err)
}

func TestLoadSeedErrors(t *testing.T) {
	_, err := broker.LoadSeed(filepath.Join(t.TempDir(), "absent.yml"))
	gt.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	gt.NoError(t, os.WriteFile(path, []byte("machines: {not a list"), 0644))
	_, err = broker.LoadSeed(path)
	gt.Error(t, err)
}
