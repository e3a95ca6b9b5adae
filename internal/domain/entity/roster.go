package entity

import "strings"

// Leg selects one directional passenger set of a vehicle assignment.
type Leg string

const (
	LegOutbound Leg = "outbound"
	LegReturn   Leg = "return"
)

// EligiblePassengers derives the selectable passenger list from the
// four crew-role fields, in fixed order: each field is comma-split and
// trimmed, empty tokens dropped. Names appearing in more than one role
// field appear more than once; the list is intentionally not
// deduplicated.
func EligiblePassengers(record ActivityRecord) []string {
	var passengers []string
	for _, field := range []string{
		record.PilotInside,
		record.PilotOutside,
		record.LandingManager,
		record.Technician,
	} {
		for _, token := range strings.Split(field, ",") {
			name := strings.TrimSpace(token)
			if name != "" {
				passengers = append(passengers, name)
			}
		}
	}
	return passengers
}

// ToggleVehicle adds vehicleName to a flight record's vehicle list,
// or removes it together with every assignment referencing it.
func ToggleVehicle(record *ActivityRecord, vehicleName string) {
	if record.Kind != KindFlight || record.Flight == nil {
		return
	}
	flight := record.Flight
	for i, v := range flight.VehiclesList {
		if v == vehicleName {
			flight.VehiclesList = append(flight.VehiclesList[:i], flight.VehiclesList[i+1:]...)
			kept := flight.VehicleAssignments[:0]
			for _, a := range flight.VehicleAssignments {
				if a.Vehicle != vehicleName {
					kept = append(kept, a)
				}
			}
			flight.VehicleAssignments = kept
			return
		}
	}
	flight.VehiclesList = append(flight.VehiclesList, vehicleName)
}

// AddAssignment appends an empty vehicle assignment. No-op when the
// vehicle list is empty; callers disable the add action in that state.
func AddAssignment(record *ActivityRecord) bool {
	if record.Kind != KindFlight || record.Flight == nil || len(record.Flight.VehiclesList) == 0 {
		return false
	}
	record.Flight.VehicleAssignments = append(record.Flight.VehicleAssignments, VehicleAssignment{})
	return true
}

// RemoveAssignment deletes the assignment at index. Vehicle membership
// in the vehicle list is independent, so nothing cascades.
func RemoveAssignment(record *ActivityRecord, index int) bool {
	if record.Kind != KindFlight || record.Flight == nil {
		return false
	}
	assignments := record.Flight.VehicleAssignments
	if index < 0 || index >= len(assignments) {
		return false
	}
	record.Flight.VehicleAssignments = append(assignments[:index], assignments[index+1:]...)
	return true
}

// TogglePassenger removes name from the given leg if present, or adds
// it if the leg has a free seat. A full leg rejects the addition with
// ErrCapacityExceeded and stays unchanged.
func TogglePassenger(assignment *VehicleAssignment, leg Leg, name string) error {
	set := assignment.legSet(leg)
	for i, p := range *set {
		if p == name {
			*set = append((*set)[:i], (*set)[i+1:]...)
			return nil
		}
	}
	if len(*set) >= MaxPassengersPerLeg {
		return ErrCapacityExceeded
	}
	*set = append(*set, name)
	return nil
}

// CopyOutboundToReturn overwrites the return leg with a copy of the
// current outbound leg.
func CopyOutboundToReturn(assignment *VehicleAssignment) {
	assignment.PassengersReturn = append([]string(nil), assignment.PassengersOutbound...)
}

func (a *VehicleAssignment) legSet(leg Leg) *[]string {
	if leg == LegReturn {
		return &a.PassengersReturn
	}
	return &a.PassengersOutbound
}
