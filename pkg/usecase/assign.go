package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/vdi-ops/assignctl/pkg/domain/interfaces"
	"github.com/vdi-ops/assignctl/pkg/domain/model"
	"github.com/vdi-ops/assignctl/pkg/domain/types"
)

// Assign runs the reconciliation loop: one broker round-trip pipeline per
// roster record, strictly sequential, producing exactly one outcome per
// record
type Assign struct {
	broker interfaces.BrokerClient
}

// NewAssign creates a new Assign use case
func NewAssign(broker interfaces.BrokerClient) *Assign {
	return &Assign{broker: broker}
}

// Process transforms each request into exactly one outcome, in input order.
// A failure on one record never affects another record and never aborts the
// loop; every failure path is converted into that record's outcome.
func (u *Assign) Process(ctx context.Context, requests []*model.AssignmentRequest) []*model.AssignmentOutcome {
	logger := ctxlog.From(ctx)

	outcomes := make([]*model.AssignmentOutcome, 0, len(requests))
	for _, req := range requests {
		outcome := u.reconcile(ctx, req)
		outcomes = append(outcomes, outcome)

		switch outcome.Status.Class() {
		case types.ClassFailed:
			logger.Warn("assignment failed", slog.Any("outcome", outcome))
		default:
			logger.Info("assignment processed", slog.Any("outcome", outcome))
		}
	}
	return outcomes
}

// reconcile runs the per-record procedure: validate, resolve machine, check
// group membership, normalize the account, resolve the user, assign
func (u *Assign) reconcile(ctx context.Context, req *model.AssignmentRequest) *model.AssignmentOutcome {
	if len(req.MissingFields()) > 0 {
		return model.NewAssignmentOutcome(req, req.UserName, types.NewSkippedMissingInfo())
	}

	machine, err := u.broker.FindMachine(ctx, types.MachineName(req.MachineName))
	if err != nil {
		ctxlog.From(ctx).Debug("machine lookup failed", "machine", req.MachineName, "error", err)
		return model.NewAssignmentOutcome(req, req.UserName, types.NewFailedMachineNotFound())
	}

	requested := types.GroupName(req.DeliveryGroupName)
	if machine.DesktopGroup != requested {
		return model.NewAssignmentOutcome(req, req.UserName, types.NewFailedWrongGroup(requested, machine.DesktopGroup))
	}

	account := normalizeAccount(req.UserName, machine)

	// User-side resolution is guarded independently of the machine lookup so
	// its failures report as user problems, not machine problems.
	if _, err := u.broker.FindUser(ctx, account); err != nil {
		ctxlog.From(ctx).Debug("user lookup failed", "account", account, "error", err)
		return model.NewAssignmentOutcome(req, account.String(), types.NewFailedUserNotFound())
	}

	assigned, err := u.broker.ListAssignedUsers(ctx, machine.UID)
	if err != nil {
		return model.NewAssignmentOutcome(req, account.String(), types.NewFailedError(err))
	}
	if slices.Contains(assigned, account) {
		return model.NewAssignmentOutcome(req, account.String(), types.NewSkippedAlreadyAssigned())
	}

	// The only mutation in the whole procedure. Once issued it is final; no
	// rollback on later failures.
	if err := u.broker.AssignUser(ctx, account, machine.UID); err != nil {
		return model.NewAssignmentOutcome(req, account.String(), types.NewFailedError(err))
	}
	return model.NewAssignmentOutcome(req, account.String(), types.NewAssigned())
}

// normalizeAccount qualifies a bare user name with the domain prefix of the
// machine's fully-qualified name. A name already carrying a separator passes
// through, as does a bare name when the machine itself has no domain prefix.
func normalizeAccount(userName string, machine *model.Machine) types.AccountName {
	account := types.AccountName(userName)
	if account.Qualified() {
		return account
	}

	domain := machine.Name.Domain()
	if domain == "" {
		return account
	}
	return types.QualifyAccount(domain, userName)
}
