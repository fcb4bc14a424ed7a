package service

import "errors"

var (
	// Tenant errors
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrTenantExists    = errors.New("tenant already exists")
	ErrInvalidSlug     = errors.New("tenant slug must be lowercase letters, digits and hyphens")
	ErrUnknownMode     = errors.New("unknown tenant resolution mode")
	ErrHostNotEligible = errors.New("host has no subdomain label to resolve")

	// Plan errors
	ErrPlanNotFound = errors.New("plan not found")
	ErrPlanExists   = errors.New("plan already exists")

	// Subscription / entitlement errors
	ErrNoSubscription  = errors.New("tenant has no subscription")
	ErrUnknownResource = errors.New("unknown resource type")
	ErrUnknownFeature  = errors.New("unknown feature flag")

	// Override workflow errors
	ErrOverrideNotFound     = errors.New("override request not found")
	ErrNotPendingFirst      = errors.New("request is not awaiting first approval")
	ErrNotPendingSecond     = errors.New("request is not awaiting second approval")
	ErrSameApprover         = errors.New("second approver must differ from first approver")
	ErrNotApproved          = errors.New("request is not fully approved")
	ErrAlreadyTerminal      = errors.New("request is already in a terminal state")
	ErrEmptyRejectionReason = errors.New("rejection reason must not be empty")
	ErrExpiryRequired       = errors.New("temporary overrides require an expiry")
	ErrRequestedNotIncrease = errors.New("requested limit must exceed the current limit")
)
