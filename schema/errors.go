package schema

import (
	"errors"
)

var (
	ErrNotExist = errors.New("not_exist_record")
	ErrNotFound = errors.New("not_found")

	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidParams    = errors.New("invalid_params")
	ErrStateConflict    = errors.New("state_conflict")
	ErrComplianceDenied = errors.New("compliance_denied")

	ErrAssetIdMismatch     = errors.New("asset_id_mismatch")
	ErrInsufficientCredits = errors.New("insufficient_credits_remaining")
	ErrAlreadyTriggered    = errors.New("bond_already_triggered")
	ErrNotTriggered        = errors.New("bond_not_triggered")
	ErrBondNotMatured      = errors.New("bond_not_matured")
	ErrBondMatured         = errors.New("bond_matured")
	ErrNotBondholder       = errors.New("not_bondholder")
	ErrRightExpired        = errors.New("marine_right_expired")
	ErrNoActiveProject     = errors.New("no_active_restoration_project")
	ErrDeadlinePassed      = errors.New("project_deadline_passed")
	ErrPhaseNotActive      = errors.New("phase_not_active")
	ErrPhaseNotCompleted   = errors.New("phase_not_completed")
	ErrAllocationExceeded  = errors.New("phase_allocation_exceeds_target")
	ErrTokensIssued        = errors.New("ownership_tokens_already_issued")
	ErrTokensNotIssued     = errors.New("ownership_tokens_not_issued")
	ErrTargetNotReached    = errors.New("funding_target_not_reached")
	ErrFractionalized      = errors.New("property_already_fractionalized")
	ErrNotFractionalized   = errors.New("property_not_fractionalized")
	ErrTransferSuspended   = errors.New("asset_transfers_suspended")
)
