package enums

// Building parameter choices. These mirror the selector fields on the
// estimation input form; all are free-form strings at the API boundary and
// normalized here before the calculators branch on them.

// BaseType selects the column base fixity.
type BaseType string

const (
	BasePinned BaseType = "pinned"
	BaseFixed  BaseType = "fixed"
)

// EndwallType selects the endwall framing system.
type EndwallType string

const (
	EndwallBearing EndwallType = "bearing" // post-and-beam bearing frame
	EndwallRigid   EndwallType = "rigid"   // full rigid frame, future expansion
)

// BracingType selects the sidewall/roof bracing system.
type BracingType string

const (
	BracingRod    BracingType = "rod"
	BracingCable  BracingType = "cable"
	BracingPortal BracingType = "portal"
)

// CraneDuty classifies crane service per the duty factor table.
type CraneDuty string

const (
	CraneDutyLight  CraneDuty = "L"
	CraneDutyMedium CraneDuty = "M"
	CraneDutyHeavy  CraneDuty = "H"
)

// CanopyStyle discriminates the roof-edge add-on variants.
type CanopyStyle string

const (
	CanopyPlain         CanopyStyle = "canopy"
	CanopyFascia        CanopyStyle = "fascia"
	CanopyRoofExtension CanopyStyle = "roof_extension"
)

// MonitorFrame discriminates roof monitor frame construction.
type MonitorFrame string

const (
	MonitorColdFormed MonitorFrame = "cold_formed"
	MonitorHotRolled  MonitorFrame = "hot_rolled"
)

// MonitorEave discriminates how the monitor throat is closed at the eave:
// sheeted sides carry wall panel, open sides carry ventilation louvers.
type MonitorEave string

const (
	MonitorEaveSheeted MonitorEave = "sheeted"
	MonitorEaveOpen    MonitorEave = "open"
)
