package enums

import "fmt"

// EstimationStatus tracks an estimation through the calculation lifecycle.
type EstimationStatus string

const (
	EstimationStatusDraft       EstimationStatus = "draft"
	EstimationStatusCalculating EstimationStatus = "calculating"
	EstimationStatusCalculated  EstimationStatus = "calculated"
	EstimationStatusFinalized   EstimationStatus = "finalized"
)

var validEstimationStatuses = []EstimationStatus{
	EstimationStatusDraft,
	EstimationStatusCalculating,
	EstimationStatusCalculated,
	EstimationStatusFinalized,
}

// String implements fmt.Stringer.
func (s EstimationStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known EstimationStatus.
func (s EstimationStatus) IsValid() bool {
	for _, candidate := range validEstimationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseEstimationStatus converts raw input into an EstimationStatus.
func ParseEstimationStatus(value string) (EstimationStatus, error) {
	for _, candidate := range validEstimationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid estimation status %q", value)
}
