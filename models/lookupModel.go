package models

import (
	"fmt"
	"time"
)

// LookupKind names one of the pickable prescription fields whose options are
// a built-in base list unioned with clinic-added custom values.
type LookupKind string

const (
	LookupMedicine    LookupKind = "medicine"
	LookupQuantity    LookupKind = "quantity"
	LookupTiming      LookupKind = "timing"
	LookupFrequency   LookupKind = "frequency"
	LookupDuration    LookupKind = "duration"
	LookupInstruction LookupKind = "instruction"
)

// LookupKinds lists every supported kind, in display order.
var LookupKinds = []LookupKind{
	LookupMedicine,
	LookupQuantity,
	LookupTiming,
	LookupFrequency,
	LookupDuration,
	LookupInstruction,
}

var lookupTables = map[LookupKind]string{
	LookupMedicine:    "custom_medicines",
	LookupQuantity:    "custom_quantities",
	LookupTiming:      "custom_timings",
	LookupFrequency:   "custom_frequencies",
	LookupDuration:    "custom_durations",
	LookupInstruction: "custom_instructions",
}

// LookupTable resolves a kind to its backing table.
func LookupTable(kind LookupKind) (string, error) {
	table, ok := lookupTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown lookup kind: %q", kind)
	}
	return table, nil
}

// CustomOption is a clinic-added value extending one of the base lists.
// The same shape backs all six custom_* tables.
type CustomOption struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Value     string    `gorm:"column:value;not null;unique" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// BaseOptions returns the built-in option list for a kind. Callers must not
// mutate the returned slice.
func BaseOptions(kind LookupKind) []string {
	return baseOptions[kind]
}

var baseOptions = map[LookupKind][]string{
	LookupMedicine: {
		"Tab Levocetirizine 5mg",
		"Tab Fexofenadine 120mg",
		"Tab Fexofenadine 180mg",
		"Tab Hydroxyzine 10mg",
		"Tab Itraconazole 100mg",
		"Tab Itraconazole 200mg",
		"Tab Terbinafine 250mg",
		"Tab Fluconazole 150mg",
		"Tab Azithromycin 500mg",
		"Tab Doxycycline 100mg",
		"Tab Isotretinoin 10mg",
		"Tab Isotretinoin 20mg",
		"Tab Prednisolone 10mg",
		"Cap Amoxicillin 500mg",
		"Clobetasol Cream 0.05%",
		"Mometasone Cream 0.1%",
		"Ketoconazole Cream 2%",
		"Luliconazole Cream 1%",
		"Clindamycin Gel 1%",
		"Adapalene Gel 0.1%",
		"Benzoyl Peroxide Gel 2.5%",
		"Minoxidil Solution 5%",
		"Ketoconazole Shampoo 2%",
		"Calamine Lotion",
		"Moisturising Cream",
		"Sunscreen SPF 50",
	},
	LookupQuantity: {
		"1 tablet",
		"1/2 tablet",
		"2 tablets",
		"1 capsule",
		"Thin layer",
		"Pea-sized amount",
		"5 ml",
		"10 ml",
	},
	LookupTiming: {
		"Before food",
		"After food",
		"With food",
		"Empty stomach",
		"Morning",
		"Night",
		"Morning and night",
	},
	LookupFrequency: {
		"Once daily",
		"Twice daily",
		"Three times daily",
		"Once at night",
		"Twice a week",
		"Once a week",
		"Alternate days",
		"As needed",
	},
	LookupDuration: {
		"3 days",
		"5 days",
		"7 days",
		"10 days",
		"2 weeks",
		"3 weeks",
		"1 month",
		"2 months",
		"3 months",
	},
	LookupInstruction: {
		"Apply on affected area",
		"Apply on face",
		"Apply on scalp",
		"Avoid sun exposure",
		"Do not stop abruptly",
		"Continue till review",
		"Use only at night",
	},
}
