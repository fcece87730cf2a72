package charger

// Class is the charging technology tier of a charger.
type Class string

const (
	ClassACStandard  Class = "AC_STANDARD"
	ClassDCFast      Class = "DC_FAST"
	ClassDCUltraFast Class = "DC_ULTRA_FAST"
)

func (c Class) String() string {
	return string(c)
}

func (c Class) IsValid() bool {
	switch c {
	case ClassACStandard, ClassDCFast, ClassDCUltraFast:
		return true
	default:
		return false
	}
}

// Status is the operational state of a charger.
type Status string

const (
	StatusAvailable        Status = "AVAILABLE"
	StatusInUse            Status = "IN_USE"
	StatusUnderMaintenance Status = "UNDER_MAINTENANCE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusUnderMaintenance:
		return true
	default:
		return false
	}
}
