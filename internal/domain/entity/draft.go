package entity

// Field identifiers reported by ValidateForSave and accepted by the
// completeness advisor. They match the stored document field names.
const (
	FieldPlatform       = "platform"
	FieldTaskName       = "taskName"
	FieldManager        = "manager"
	FieldWorkSite       = "workSite"
	FieldProjectNumber  = "projectNumber"
	FieldPilotInside    = "pilotInside"
	FieldPilotOutside   = "pilotOutside"
	FieldLandingManager = "landingManager"
	FieldTechnician     = "technician"
	FieldTargetDays     = "targetDays"
)

// NewDraft produces an empty record of the given kind with a fresh
// id. Flight drafts default to aerial, which forces the field
// classification.
func NewDraft(kind ActivityKind) ActivityRecord {
	record := ActivityRecord{
		ID:   NewActivityID(),
		Kind: kind,
	}
	switch kind {
	case KindFlight:
		record.Flight = &FlightFields{
			Type:   TypeAerial,
			Heilan: HeilanField,
		}
	case KindMant:
		record.Mant = &MantFields{}
	case KindAbroad:
		record.Abroad = &AbroadFields{}
	}
	return record
}

// ApplyTypeChange switches a flight record's type and forces the
// matching heilan classification: aerial works in the field, ground
// works in the office. Non-flight records are left untouched.
func ApplyTypeChange(record *ActivityRecord, newType FlightType) {
	if record.Kind != KindFlight || record.Flight == nil {
		return
	}
	record.Flight.Type = newType
	switch newType {
	case TypeAerial:
		record.Flight.Heilan = HeilanField
	case TypeGround:
		record.Flight.Heilan = HeilanOffice
	}
}

// ValidateForSave returns the identifiers of required fields that are
// empty. A non-empty result means the save must be rejected with no
// mutation.
func ValidateForSave(record ActivityRecord) []string {
	var missing []string
	switch record.Kind {
	case KindFlight:
		flight := record.Flight
		if flight == nil {
			flight = &FlightFields{}
		}
		if flight.Platform == "" {
			missing = append(missing, FieldPlatform)
		}
		if record.TaskName == "" {
			missing = append(missing, FieldTaskName)
		}
		if record.Manager == "" {
			missing = append(missing, FieldManager)
		}
		if flight.WorkSite == "" {
			missing = append(missing, FieldWorkSite)
		}
		if flight.ProjectNumber == "" {
			missing = append(missing, FieldProjectNumber)
		}
	case KindMant:
		if record.TaskName == "" {
			missing = append(missing, FieldTaskName)
		}
	case KindAbroad:
		if record.TaskName == "" {
			missing = append(missing, FieldTaskName)
		}
		if record.Abroad == nil || record.Abroad.ProjectNumber == "" {
			missing = append(missing, FieldProjectNumber)
		}
	}
	return missing
}

// ValidateForCreate runs ValidateForSave plus the creation-only rule:
// an abroad record must target at least one weekday.
func ValidateForCreate(record ActivityRecord) []string {
	missing := ValidateForSave(record)
	if record.Kind == KindAbroad && (record.Abroad == nil || len(record.Abroad.TargetDays) == 0) {
		missing = append(missing, FieldTargetDays)
	}
	return missing
}

// ApplySerialAutoFill overwrites a flight record's serial number with
// the dealer number mapped to its tail number. A tail number with no
// mapping leaves the serial number alone, preserving manual entry.
func ApplySerialAutoFill(record *ActivityRecord, dealers []DealerNumber) {
	if record.Kind != KindFlight || record.Flight == nil || record.Flight.TailNumber == "" {
		return
	}
	for _, d := range dealers {
		if d.TailNumber == record.Flight.TailNumber {
			record.Flight.SerialNumber = d.DealerNumber
			return
		}
	}
}
