package model

import "github.com/vdi-ops/assignctl/pkg/domain/types"

// Machine represents a broker-managed virtual desktop machine. Read-only to
// this tool; the broker owns the record.
type Machine struct {
	UID          types.MachineUID  `json:"uid"`
	Name         types.MachineName `json:"name"`
	DesktopGroup types.GroupName   `json:"desktop_group"`
}

// User represents a broker-known user account
type User struct {
	Name types.AccountName `json:"name"`
}
