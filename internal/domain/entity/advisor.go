package entity

// PlatformAerostar is the platform whose aerial flights require the
// full four-man crew.
const PlatformAerostar = "אירוסטאר"

// IsFieldMissing reports whether a crew-role field should be
// highlighted as missing. Only aerial flight records are checked:
// pilotInside and technician are required on every aerial activity,
// and the Aerostar platform additionally requires pilotOutside and
// landingManager.
func IsFieldMissing(record ActivityRecord, fieldName string) bool {
	if record.Kind != KindFlight || record.Flight == nil || record.Flight.Type != TypeAerial {
		return false
	}
	switch fieldName {
	case FieldPilotInside:
		return record.PilotInside == ""
	case FieldTechnician:
		return record.Technician == ""
	case FieldPilotOutside:
		return record.Flight.Platform == PlatformAerostar && record.PilotOutside == ""
	case FieldLandingManager:
		return record.Flight.Platform == PlatformAerostar && record.LandingManager == ""
	}
	return false
}

// RecordWarnings are the advisory whole-record flags shown for aerial
// activities. They never block a save.
type RecordWarnings struct {
	CrewIncomplete bool `json:"crewIncomplete"`
	NoVehicle      bool `json:"noVehicle"`
	NoSerialNumber bool `json:"noSerialNumber"`
}

// Warnings computes the advisory flags for a record. Non-aerial
// records never warn.
func Warnings(record ActivityRecord) RecordWarnings {
	if record.Kind != KindFlight || record.Flight == nil || record.Flight.Type != TypeAerial {
		return RecordWarnings{}
	}
	crew := IsFieldMissing(record, FieldPilotInside) ||
		IsFieldMissing(record, FieldPilotOutside) ||
		IsFieldMissing(record, FieldLandingManager) ||
		IsFieldMissing(record, FieldTechnician)
	return RecordWarnings{
		CrewIncomplete: crew,
		NoVehicle:      len(record.Flight.VehiclesList) == 0,
		NoSerialNumber: record.Flight.SerialNumber == "",
	}
}
