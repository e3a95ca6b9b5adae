package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligiblePassengers(t *testing.T) {
	record := NewDraft(KindFlight)
	record.PilotInside = "אבי, בני"
	record.PilotOutside = "בני"
	record.LandingManager = "  גדי "
	record.Technician = "דני,,אבי"

	// Fixed role order, trimmed, empty tokens dropped, duplicates kept.
	assert.Equal(t,
		[]string{"אבי", "בני", "בני", "גדי", "דני", "אבי"},
		EligiblePassengers(record))

	assert.Empty(t, EligiblePassengers(NewDraft(KindFlight)))
}

func TestToggleVehicleIsOwnInverse(t *testing.T) {
	record := NewDraft(KindFlight)
	record.Flight.VehiclesList = []string{"ג'יפ 1", "ג'יפ 2"}

	ToggleVehicle(&record, "מיניבוס")
	assert.Equal(t, []string{"ג'יפ 1", "ג'יפ 2", "מיניבוס"}, record.Flight.VehiclesList)

	ToggleVehicle(&record, "מיניבוס")
	assert.Equal(t, []string{"ג'יפ 1", "ג'יפ 2"}, record.Flight.VehiclesList)
}

func TestToggleVehicleCascadesAssignments(t *testing.T) {
	record := NewDraft(KindFlight)
	record.Flight.VehiclesList = []string{"ג'יפ 1", "ג'יפ 2"}
	record.Flight.VehicleAssignments = []VehicleAssignment{
		{Vehicle: "ג'יפ 1", PassengersOutbound: []string{"אבי"}},
		{Vehicle: "ג'יפ 2"},
		{Vehicle: "ג'יפ 1"},
	}

	ToggleVehicle(&record, "ג'יפ 1")
	assert.Equal(t, []string{"ג'יפ 2"}, record.Flight.VehiclesList)
	require.Len(t, record.Flight.VehicleAssignments, 1)
	assert.Equal(t, "ג'יפ 2", record.Flight.VehicleAssignments[0].Vehicle)

	// Re-adding the vehicle does not resurrect its assignments.
	ToggleVehicle(&record, "ג'יפ 1")
	assert.Equal(t, []string{"ג'יפ 2", "ג'יפ 1"}, record.Flight.VehiclesList)
	assert.Len(t, record.Flight.VehicleAssignments, 1)
}

func TestAddAssignment(t *testing.T) {
	record := NewDraft(KindFlight)

	// No vehicles selected yet: silent no-op.
	assert.False(t, AddAssignment(&record))
	assert.Empty(t, record.Flight.VehicleAssignments)

	record.Flight.VehiclesList = []string{"ג'יפ 1"}
	assert.True(t, AddAssignment(&record))
	require.Len(t, record.Flight.VehicleAssignments, 1)
	assert.Empty(t, record.Flight.VehicleAssignments[0].Vehicle)
}

func TestRemoveAssignment(t *testing.T) {
	record := NewDraft(KindFlight)
	record.Flight.VehiclesList = []string{"ג'יפ 1"}
	record.Flight.VehicleAssignments = []VehicleAssignment{
		{Vehicle: "ג'יפ 1"}, {Vehicle: ""},
	}

	assert.False(t, RemoveAssignment(&record, 5))
	assert.True(t, RemoveAssignment(&record, 0))
	require.Len(t, record.Flight.VehicleAssignments, 1)
	// Vehicle list membership is independent of assignments.
	assert.Equal(t, []string{"ג'יפ 1"}, record.Flight.VehiclesList)
}

func TestTogglePassengerCapacity(t *testing.T) {
	assignment := VehicleAssignment{Vehicle: "ג'יפ 1"}

	for _, name := range []string{"א", "ב", "ג", "ד", "ה"} {
		require.NoError(t, TogglePassenger(&assignment, LegOutbound, name))
	}
	require.Len(t, assignment.PassengersOutbound, MaxPassengersPerLeg)

	err := TogglePassenger(&assignment, LegOutbound, "ו")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, []string{"א", "ב", "ג", "ד", "ה"}, assignment.PassengersOutbound)

	// Toggling a seated passenger removes them even at capacity.
	require.NoError(t, TogglePassenger(&assignment, LegOutbound, "ג"))
	assert.Equal(t, []string{"א", "ב", "ד", "ה"}, assignment.PassengersOutbound)

	// Legs are independent: the same name may sit in both.
	require.NoError(t, TogglePassenger(&assignment, LegReturn, "א"))
	assert.Contains(t, assignment.PassengersOutbound, "א")
	assert.Contains(t, assignment.PassengersReturn, "א")
}

func TestCopyOutboundToReturn(t *testing.T) {
	assignment := VehicleAssignment{
		PassengersOutbound: []string{"א", "ב"},
		PassengersReturn:   []string{"ג"},
	}

	CopyOutboundToReturn(&assignment)
	assert.Equal(t, []string{"א", "ב"}, assignment.PassengersReturn)

	// Full overwrite produced an independent copy.
	assignment.PassengersOutbound[0] = "ד"
	assert.Equal(t, []string{"א", "ב"}, assignment.PassengersReturn)
}
