package entity

import "time"

// SettingKey names a settings document. Settings are global reference
// data shared by every week.
type SettingKey string

const (
	SettingSuppliers          SettingKey = "suppliers"
	SettingMealsLink          SettingKey = "mealsLink"
	SettingAdditionalInfo     SettingKey = "additionalInfo"
	SettingActivityFieldLists SettingKey = "activityFieldLists"
	SettingDealerNumbers      SettingKey = "dealerNumbers"
	SettingFrequencyTable     SettingKey = "frequencyTable"
)

// KnownSettingKeys lists every key the settings collection may hold.
var KnownSettingKeys = []SettingKey{
	SettingSuppliers,
	SettingMealsLink,
	SettingAdditionalInfo,
	SettingActivityFieldLists,
	SettingDealerNumbers,
	SettingFrequencyTable,
}

// IsKnownSettingKey reports whether key names a managed setting.
func IsKnownSettingKey(key SettingKey) bool {
	for _, k := range KnownSettingKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Supplier is one entry of the managed supplier contact list.
type Supplier struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// FieldLists are the suggestion lists backing the activity form
// fields. Each list holds unique strings in manager-defined order.
type FieldLists struct {
	Platforms         []string `bson:"platforms,omitempty" json:"platforms,omitempty"`
	WorkSites         []string `bson:"workSites,omitempty" json:"workSites,omitempty"`
	ProjectNumbers    []string `bson:"projectNumbers,omitempty" json:"projectNumbers,omitempty"`
	Vehicles          []string `bson:"vehicles,omitempty" json:"vehicles,omitempty"`
	DistributionLists []string `bson:"distributionLists,omitempty" json:"distributionLists,omitempty"`
}

// DealerNumber pairs an aircraft tail number with its dealer number,
// feeding the serial-number auto-fill.
type DealerNumber struct {
	TailNumber   string `bson:"tailNumber" json:"tailNumber"`
	DealerNumber string `bson:"dealerNumber" json:"dealerNumber"`
}

// FrequencyTableMeta describes the uploaded frequency-table image.
type FrequencyTableMeta struct {
	ImageName string    `bson:"imageName,omitempty" json:"imageName,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DayForecast is one weekday's weather display entry. Source is
// "forecast" for live data and "fallback" for the deterministic
// pseudo-data used when the lookup fails.
type DayForecast struct {
	Day     Weekday `json:"day"`
	Date    string  `json:"date"`
	Summary string  `json:"summary"`
	TempMin int     `json:"tempMin"`
	TempMax int     `json:"tempMax"`
	Source  string  `json:"source"`
}
