package entity

// Weekday is one of the seven fixed Hebrew day labels used as bucket
// keys throughout stored week documents.
type Weekday string

// Weekdays lists the seven labels in Sunday..Saturday order.
var Weekdays = []Weekday{
	"ראשון",
	"שני",
	"שלישי",
	"רביעי",
	"חמישי",
	"שישי",
	"שבת",
}

// OperationalWeekdays are the five editable days (Sunday..Thursday);
// the last two buckets exist only for structural completeness.
var OperationalWeekdays = Weekdays[:5]

// IsValidWeekday reports whether d is one of the seven labels.
func IsValidWeekday(d Weekday) bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// WeekContainer is the unit of persistence: one document per canonical
// week number, holding an ordered activity list per weekday.
type WeekContainer struct {
	WeekNumber int                         `bson:"weekNumber" json:"weekNumber"`
	Activities map[Weekday][]ActivityRecord `bson:"activities" json:"activities"`
}

// NewWeekContainer builds an empty container with all seven weekday
// buckets present, so a missing bucket is unrepresentable.
func NewWeekContainer(weekNumber int) *WeekContainer {
	activities := make(map[Weekday][]ActivityRecord, len(Weekdays))
	for _, d := range Weekdays {
		activities[d] = []ActivityRecord{}
	}
	return &WeekContainer{
		WeekNumber: weekNumber,
		Activities: activities,
	}
}

// Normalize repairs a container loaded from storage: missing buckets
// are recreated empty and every record is migrated to the current
// shape.
func (c *WeekContainer) Normalize() {
	if c.Activities == nil {
		c.Activities = make(map[Weekday][]ActivityRecord, len(Weekdays))
	}
	for _, d := range Weekdays {
		if c.Activities[d] == nil {
			c.Activities[d] = []ActivityRecord{}
		}
	}
	for d := range c.Activities {
		for i := range c.Activities[d] {
			c.Activities[d][i].Normalize()
		}
	}
}

// Clone returns a deep copy of the container: every bucket and every
// record is duplicated, so mutating the copy never aliases the
// original.
func (c *WeekContainer) Clone() *WeekContainer {
	clone := NewWeekContainer(c.WeekNumber)
	for day, list := range c.Activities {
		records := make([]ActivityRecord, 0, len(list))
		for _, r := range list {
			records = append(records, r.Clone())
		}
		clone.Activities[day] = records
	}
	return clone
}

// AddActivity appends record to the given day's list.
func (c *WeekContainer) AddActivity(day Weekday, record ActivityRecord) error {
	if !IsValidWeekday(day) {
		return &ValidationError{MissingFields: []string{"day"}}
	}
	c.Activities[day] = append(c.Activities[day], record)
	return nil
}

// UpdateActivity replaces the record on day whose id matches
// record.ID, keeping the stored id. Returns false (no mutation) when
// the id is absent.
func (c *WeekContainer) UpdateActivity(day Weekday, record ActivityRecord) bool {
	list := c.Activities[day]
	for i := range list {
		if list[i].ID == record.ID {
			list[i] = record
			return true
		}
	}
	return false
}

// DeleteActivity removes the record with the given id from day.
// Returns false when the id is absent.
func (c *WeekContainer) DeleteActivity(day Weekday, id int64) bool {
	list := c.Activities[day]
	for i := range list {
		if list[i].ID == id {
			c.Activities[day] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// FindActivity returns the record with the given id on day, or nil.
func (c *WeekContainer) FindActivity(day Weekday, id int64) *ActivityRecord {
	list := c.Activities[day]
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}
