package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for broker lookups
var (
	ErrMachineNotFound = goerr.New("machine not found")
	ErrUserNotFound    = goerr.New("user not found")
)
