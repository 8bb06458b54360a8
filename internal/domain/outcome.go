package domain

import "strings"

// Variant distinguishes the two overlay families
type Variant int

const (
	VariantFailure Variant = iota
	VariantSuccess
)

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case VariantFailure:
		return "failure"
	case VariantSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ParseVariant parses a variant name
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "failure", "error":
		return VariantFailure, nil
	case "success":
		return VariantSuccess, nil
	default:
		return VariantFailure, &ParseError{Field: "variant", Value: s, Err: ErrUnknownVariant}
	}
}

// FailureType is the semantic outcome of a failed action
type FailureType string

const (
	FailureError   FailureType = "error"
	FailureWarning FailureType = "warning"
)

// SuccessType is the semantic outcome of a successful action
type SuccessType string

const (
	SuccessPurchase     SuccessType = "purchase"
	SuccessVerification SuccessType = "verification"
	SuccessGeneral      SuccessType = "general"
)

// FailureTypes lists every recognised failure outcome
var FailureTypes = []FailureType{FailureError, FailureWarning}

// SuccessTypes lists every recognised success outcome
var SuccessTypes = []SuccessType{SuccessPurchase, SuccessVerification, SuccessGeneral}
