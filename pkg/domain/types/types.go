package types

import (
	"strings"
)

// domainSeparator splits a fully-qualified name into its domain and
// account/machine portion, e.g. "CORP\VDI-001".
const domainSeparator = `\`

// MachineUID represents an opaque machine identifier assigned by the broker
type MachineUID string

// String returns the string representation
func (id MachineUID) String() string {
	return string(id)
}

// MachineName represents a machine name, possibly fully qualified as
// "DOMAIN\name"
type MachineName string

// String returns the string representation
func (n MachineName) String() string {
	return string(n)
}

// Domain returns the domain prefix of a fully-qualified machine name, or an
// empty string when the name carries no domain
func (n MachineName) Domain() string {
	domain, _, ok := strings.Cut(string(n), domainSeparator)
	if !ok {
		return ""
	}
	return domain
}

// AccountName represents a user account, normalized as "DOMAIN\user"
type AccountName string

// String returns the string representation
func (a AccountName) String() string {
	return string(a)
}

// Qualified reports whether the account already carries a domain prefix
func (a AccountName) Qualified() bool {
	return strings.Contains(string(a), domainSeparator)
}

// QualifyAccount builds a fully-qualified account name from a domain and a
// bare user name
func QualifyAccount(domain, user string) AccountName {
	return AccountName(domain + domainSeparator + user)
}

// GroupName represents a delivery group name
type GroupName string

// String returns the string representation
func (g GroupName) String() string {
	return string(g)
}
