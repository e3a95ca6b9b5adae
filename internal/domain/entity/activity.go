package entity

import (
	"math/rand"
	"sync"
	"time"
)

// ActivityKind discriminates the three activity variants.
type ActivityKind string

const (
	KindFlight ActivityKind = "flight"
	KindMant   ActivityKind = "mant"
	KindAbroad ActivityKind = "abroad"
)

// FlightType distinguishes aerial from ground flight-line activities.
type FlightType string

const (
	TypeAerial FlightType = "aerial"
	TypeGround FlightType = "ground"
)

// Legacy documents stored the Hebrew display labels directly.
const (
	legacyAerialLabel = "אווירי"
	legacyGroundLabel = "קרקעי"
)

// Heilan is the office/field classification derived from FlightType.
type Heilan string

const (
	HeilanOffice Heilan = "office"
	HeilanField  Heilan = "field"
)

// ActivityRecord is one scheduled activity inside a weekday bucket.
// Common fields live on the record; kind-specific fields live on
// exactly one of the three variant structs.
type ActivityRecord struct {
	ID             int64        `bson:"id" json:"id"`
	Kind           ActivityKind `bson:"activityType,omitempty" json:"activityType"`
	TaskName       string       `bson:"taskName,omitempty" json:"taskName,omitempty"`
	ProjectName    string       `bson:"projectName,omitempty" json:"projectName,omitempty"`
	Manager        string       `bson:"manager,omitempty" json:"manager,omitempty"`
	PilotInside    string       `bson:"pilotInside,omitempty" json:"pilotInside,omitempty"`
	PilotOutside   string       `bson:"pilotOutside,omitempty" json:"pilotOutside,omitempty"`
	LandingManager string       `bson:"landingManager,omitempty" json:"landingManager,omitempty"`
	Technician     string       `bson:"technician,omitempty" json:"technician,omitempty"`
	Additional     string       `bson:"additional,omitempty" json:"additional,omitempty"`
	POC            string       `bson:"poc,omitempty" json:"poc,omitempty"`
	Notes          string       `bson:"notes,omitempty" json:"notes,omitempty"`

	Flight *FlightFields `bson:"flight,omitempty" json:"flight,omitempty"`
	Mant   *MantFields   `bson:"mant,omitempty" json:"mant,omitempty"`
	Abroad *AbroadFields `bson:"abroad,omitempty" json:"abroad,omitempty"`
}

// FlightFields carries the flight-line-only fields.
type FlightFields struct {
	Platform                string              `bson:"platform,omitempty" json:"platform,omitempty"`
	Type                    FlightType          `bson:"type,omitempty" json:"type,omitempty"`
	Heilan                  Heilan              `bson:"heilan,omitempty" json:"heilan,omitempty"`
	StartTime               string              `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime                 string              `bson:"endTime,omitempty" json:"endTime,omitempty"`
	WorkSite                string              `bson:"workSite,omitempty" json:"workSite,omitempty"`
	ProjectNumber           string              `bson:"projectNumber,omitempty" json:"projectNumber,omitempty"`
	VehiclesList            []string            `bson:"vehiclesList,omitempty" json:"vehiclesList,omitempty"`
	VehicleAssignments      []VehicleAssignment `bson:"vehicleAssignments,omitempty" json:"vehicleAssignments,omitempty"`
	TailNumber              string              `bson:"tailNumber,omitempty" json:"tailNumber,omitempty"`
	SerialNumber            string              `bson:"serialNumber,omitempty" json:"serialNumber,omitempty"`
	Engine                  string              `bson:"engine,omitempty" json:"engine,omitempty"`
	Launcher                string              `bson:"launcher,omitempty" json:"launcher,omitempty"`
	Matad                   string              `bson:"matad,omitempty" json:"matad,omitempty"`
	YaslatNumber            string              `bson:"yaslatNumber,omitempty" json:"yaslatNumber,omitempty"`
	EstimatedTakeoffTime    string              `bson:"estimatedTakeoffTime,omitempty" json:"estimatedTakeoffTime,omitempty"`
	RelevantFrequencies     string              `bson:"relevantFrequencies,omitempty" json:"relevantFrequencies,omitempty"`
	AdditionalFactorsOnSite string              `bson:"additionalFactorsOnSite,omitempty" json:"additionalFactorsOnSite,omitempty"`
	GeneralSchedule         string              `bson:"generalSchedule,omitempty" json:"generalSchedule,omitempty"`
	Distribution            string              `bson:"distribution,omitempty" json:"distribution,omitempty"`
	AdditionalDistribution  string              `bson:"additionalDistribution,omitempty" json:"additionalDistribution,omitempty"`
}

// MantFields carries the maintenance-only fields.
type MantFields struct {
	ProjectNumber string `bson:"projectNumber,omitempty" json:"projectNumber,omitempty"`
	POCMant       string `bson:"pocMant,omitempty" json:"pocMant,omitempty"`
}

// AbroadFields carries the abroad-only fields. TargetDays is a
// creation-time input (which weekdays to fan the record out to) and is
// never persisted.
type AbroadFields struct {
	ProjectNumber string    `bson:"projectNumber,omitempty" json:"projectNumber,omitempty"`
	TargetDays    []Weekday `bson:"-" json:"targetDays,omitempty"`
}

// MaxPassengersPerLeg caps each directional passenger set of a
// vehicle assignment.
const MaxPassengersPerLeg = 5

// VehicleAssignment maps one vehicle of a flight activity to its
// outbound and return passenger sets.
type VehicleAssignment struct {
	Vehicle            string   `bson:"vehicle" json:"vehicle"`
	DepartureTime      string   `bson:"departureTime,omitempty" json:"departureTime,omitempty"`
	PassengersOutbound []string `bson:"passengersOutbound,omitempty" json:"passengersOutbound,omitempty"`
	PassengersReturn   []string `bson:"passengersReturn,omitempty" json:"passengersReturn,omitempty"`
}

// NewActivityID returns a fresh record identifier.
func NewActivityID() int64 {
	return time.Now().UnixMilli()
}

var (
	fanoutMu     sync.Mutex
	lastFanoutID int64
)

// NewFanoutActivityID returns an identifier for one copy of a
// multi-day fan-out, mixing a random component into the timestamp so
// copies minted in the same millisecond stay distinct.
func NewFanoutActivityID() int64 {
	fanoutMu.Lock()
	defer fanoutMu.Unlock()
	id := time.Now().UnixMilli()*1000 + rand.Int63n(1000)
	for id == lastFanoutID {
		id = time.Now().UnixMilli()*1000 + rand.Int63n(1000)
	}
	lastFanoutID = id
	return id
}

// Normalize migrates a record loaded from storage to the current
// shape: documents written before the discriminant existed are flight
// activities, Hebrew type labels become the canonical values, and the
// variant struct matching the kind is always allocated.
func (r *ActivityRecord) Normalize() {
	if r.Kind == "" {
		r.Kind = KindFlight
	}
	switch r.Kind {
	case KindFlight:
		if r.Flight == nil {
			r.Flight = &FlightFields{}
		}
		switch string(r.Flight.Type) {
		case legacyAerialLabel:
			r.Flight.Type = TypeAerial
		case legacyGroundLabel:
			r.Flight.Type = TypeGround
		}
	case KindMant:
		if r.Mant == nil {
			r.Mant = &MantFields{}
		}
	case KindAbroad:
		if r.Abroad == nil {
			r.Abroad = &AbroadFields{}
		}
	}
}

// Clone returns a deep copy: variant structs and every contained
// slice are duplicated, so mutating the copy never aliases the
// original. Fan-out relies on this.
func (r ActivityRecord) Clone() ActivityRecord {
	clone := r
	if r.Flight != nil {
		flight := *r.Flight
		flight.VehiclesList = append([]string(nil), r.Flight.VehiclesList...)
		if r.Flight.VehicleAssignments != nil {
			flight.VehicleAssignments = make([]VehicleAssignment, len(r.Flight.VehicleAssignments))
			for i, a := range r.Flight.VehicleAssignments {
				a.PassengersOutbound = append([]string(nil), a.PassengersOutbound...)
				a.PassengersReturn = append([]string(nil), a.PassengersReturn...)
				flight.VehicleAssignments[i] = a
			}
		}
		clone.Flight = &flight
	}
	if r.Mant != nil {
		mant := *r.Mant
		clone.Mant = &mant
	}
	if r.Abroad != nil {
		abroad := *r.Abroad
		abroad.TargetDays = append([]Weekday(nil), r.Abroad.TargetDays...)
		clone.Abroad = &abroad
	}
	return clone
}

// DisplayName returns whichever of taskName/projectName is populated.
func (r *ActivityRecord) DisplayName() string {
	if r.TaskName != "" {
		return r.TaskName
	}
	return r.ProjectName
}
