package enums

import "fmt"

// AddonKind identifies an optional building feature calculated independently
// of the main structure and merged into an existing result.
type AddonKind string

const (
	AddonMezzanine   AddonKind = "mezzanine"
	AddonCrane       AddonKind = "crane"
	AddonCanopy      AddonKind = "canopy"
	AddonPartition   AddonKind = "partition"
	AddonRoofMonitor AddonKind = "roof_monitor"
	AddonLiner       AddonKind = "liner"
	AddonAccessories AddonKind = "accessories"
)

var validAddonKinds = []AddonKind{
	AddonMezzanine,
	AddonCrane,
	AddonCanopy,
	AddonPartition,
	AddonRoofMonitor,
	AddonLiner,
	AddonAccessories,
}

// String implements fmt.Stringer.
func (a AddonKind) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AddonKind.
func (a AddonKind) IsValid() bool {
	for _, candidate := range validAddonKinds {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAddonKind converts raw input into an AddonKind.
func ParseAddonKind(value string) (AddonKind, error) {
	for _, candidate := range validAddonKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid addon kind %q", value)
}
