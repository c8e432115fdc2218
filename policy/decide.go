package policy

import (
	"fmt"
	"math/big"
	"time"

	"github.com/rotkonetworks/prax/model/transaction"
	"github.com/rotkonetworks/prax/tradingmode"
)

// Deny reasons for the fixed checks. They are diagnostic only and must never
// be surfaced to the requesting origin.
const (
	ReasonAutoSignDisabled = "auto-sign is disabled"
	ReasonNoOrigins        = "no allowed origins configured"
	ReasonSessionExpired   = "trading session has expired"
	ReasonNoOrigin         = "origin not provided"
	ReasonNonSwapActions   = "transaction contains non-swap actions"
	ReasonBadValueLimit    = "configured max value per swap is not a valid integer"
)

// Decision is the verdict of an auto-authorization evaluation. Reason is set
// iff Allowed is false and identifies the exact failing check.
type Decision struct {
	Allowed bool
	Reason  string
}

func deny(reason string) *Decision { return &Decision{Reason: reason} }

// Decide evaluates whether the plan may be signed without interactive
// approval for the given requesting origin.
//
// Checks run in a fixed order and stop at the first failure; the order
// determines which reason is reported and is part of the contract:
//
//  1. auto-sign enabled
//  2. allowed-origin whitelist non-empty (empty never means allow-all)
//  3. session not expired (expiresAt == now counts as expired)
//  4. origin provided (absent is untrusted, not local)
//  5. origin whitelisted
//  6. plan is swap-only
//  7. total spend value within maxValuePerSwap, inclusive ("0" = unlimited)
func Decide(settings *tradingmode.Settings, plan *transaction.TransactionPlan, origin string, now time.Time) *Decision {
	if settings == nil || !settings.AutoSign {
		return deny(ReasonAutoSignDisabled)
	}
	if len(settings.AllowedOrigins) == 0 {
		return deny(ReasonNoOrigins)
	}
	if settings.ExpiresAt <= now.UnixMilli() {
		return deny(ReasonSessionExpired)
	}
	if origin == "" {
		return deny(ReasonNoOrigin)
	}
	if !settings.OriginAllowed(origin) {
		return deny(fmt.Sprintf("origin %s not in whitelist", origin))
	}
	if !IsSwapOnly(plan) {
		return deny(ReasonNonSwapActions)
	}
	if settings.MaxValuePerSwap != "" && settings.MaxValuePerSwap != "0" {
		maxValue, ok := new(big.Int).SetString(settings.MaxValuePerSwap, 10)
		if !ok || maxValue.Sign() < 0 {
			return deny(ReasonBadValueLimit)
		}
		txValue := TotalSpendValue(plan)
		if txValue.Cmp(maxValue) > 0 {
			return deny(fmt.Sprintf("transaction value %s exceeds limit %s", txValue, maxValue))
		}
	}
	return &Decision{Allowed: true}
}
