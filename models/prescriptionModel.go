package models

import (
	"time"
)

// Prescription model: the clinical note attached to exactly one visit.
type Prescription struct {
	PrescriptionID int                    `gorm:"primaryKey;autoIncrement;column:prescription_id" json:"prescription_id"`
	VisitID        int                    `gorm:"column:visit_id;not null;uniqueIndex" json:"visit_id"`
	Symptoms       string                 `gorm:"column:symptoms;type:text" json:"symptoms"`
	Findings       string                 `gorm:"column:findings;type:text" json:"findings"`
	Diagnosis      string                 `gorm:"column:diagnosis;type:text" json:"diagnosis"`
	CreatedAt      time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Medicines      []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID;references:PrescriptionID" json:"medicines"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionMedicine is a single medicine line item. Line items have no
// stable identity across edits: saving a prescription replaces the full set.
type PrescriptionMedicine struct {
	MedicineID     int    `gorm:"primaryKey;autoIncrement;column:medicine_id" json:"medicine_id"`
	PrescriptionID int    `gorm:"column:prescription_id;not null;index" json:"prescription_id"`
	MedicineName   string `gorm:"column:medicine_name;not null" json:"medicine_name"`
	Quantity       string `gorm:"column:quantity" json:"quantity"`
	Timing         string `gorm:"column:timing" json:"timing"`
	Frequency      string `gorm:"column:frequency" json:"frequency"`
	Duration       string `gorm:"column:duration" json:"duration"`
	Instructions   string `gorm:"column:instructions" json:"instructions"`
}

func (PrescriptionMedicine) TableName() string {
	return "prescription_medicines"
}
