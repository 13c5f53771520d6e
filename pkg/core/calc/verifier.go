// Package calc holds consistency checks over calculator results. Checks never
// alter a result; they only report warnings for the caller to surface.
package calc

import (
	"fmt"
	"math"

	"founder_calculators/pkg/core/captable"
	"founder_calculators/pkg/core/market"
)

// relTolerance absorbs floating-point noise in ordering checks
const relTolerance = 1e-6

// VerificationResult holds the status of integrity checks
type VerificationResult struct {
	IsConsistent bool     `json:"isConsistent"`
	Warnings     []string `json:"warnings,omitempty"`
}

// CheckMarketSize verifies SOM <= SAM <= TAM. Percentages above 100 upstream
// break the ordering; this reports it without clamping.
func CheckMarketSize(res market.SizeResult) VerificationResult {
	var warnings []string
	if exceeds(res.SAM, res.TAM) {
		warnings = append(warnings, fmt.Sprintf("SAM (%.2f) exceeds TAM (%.2f)", res.SAM, res.TAM))
	}
	if exceeds(res.SOM, res.SAM) {
		warnings = append(warnings, fmt.Sprintf("SOM (%.2f) exceeds SAM (%.2f)", res.SOM, res.SAM))
	}

	return VerificationResult{
		IsConsistent: len(warnings) == 0,
		Warnings:     warnings,
	}
}

// CheckOwnership verifying a cap table sums to 100%
func CheckOwnership(table []captable.Ownership) VerificationResult {
	var total float64
	for _, o := range table {
		total += o.Percent
	}

	var warnings []string
	if gap := total - 100; math.Abs(gap) > 0.01 {
		warnings = append(warnings, fmt.Sprintf("Ownership sums to %.4f%% (off by %.4f)", total, gap))
	}

	return VerificationResult{
		IsConsistent: len(warnings) == 0,
		Warnings:     warnings,
	}
}

func exceeds(a, b float64) bool {
	return a-b > relTolerance*math.Max(1, math.Abs(b))
}
