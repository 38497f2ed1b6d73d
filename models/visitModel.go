package models

import (
	"strings"
	"time"
)

// Patient status tags stamped on a visit at insert time.
const (
	PatientStatusNew = "N"
	PatientStatusOld = "O"
)

// Visit model. Patient details are denormalized onto the row at visit time;
// PatientID is the stable back-reference.
type Visit struct {
	VisitID          int       `gorm:"primaryKey;column:visit_id" json:"visit_id"`
	PatientID        int       `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Date             string    `gorm:"column:date;not null;index" json:"date"`
	FullName         string    `gorm:"column:fullname;not null;index" json:"fullname"`
	Hometown         string    `gorm:"column:hometown" json:"hometown"`
	Age              int       `gorm:"column:age" json:"age"`
	PhoneNo          string    `gorm:"column:phone_no;index" json:"phone_no"`
	Sex              string    `gorm:"column:sex" json:"sex"`
	ConsultationType string    `gorm:"column:consultation_type;not null" json:"consultation_type"`
	ConsultationFee  float64   `gorm:"column:consultation_fee;not null" json:"consultation_fee"`
	DrugFee          float64   `gorm:"column:drug_fee" json:"drug_fee"`
	ProcedureFee     float64   `gorm:"column:procedure_fee" json:"procedure_fee"`
	ExtraProcedures  string    `gorm:"column:extra_procedures" json:"extra_procedures"`
	NewOld           string    `gorm:"column:new_old;not null" json:"new_old"`
	PaymentMethod    string    `gorm:"column:payment_method;not null" json:"payment_method"`
	Referral         string    `gorm:"column:referral" json:"referral"`
	Weight           string    `gorm:"column:weight" json:"weight"`
	BloodPressure    string    `gorm:"column:blood_pressure" json:"blood_pressure"`
	Pulse            string    `gorm:"column:pulse" json:"pulse"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Visit) TableName() string {
	return "visits"
}

// TotalFee is the combined billable amount for the visit.
func (v Visit) TotalFee() float64 {
	return v.ConsultationFee + v.DrugFee + v.ProcedureFee
}

// IsNew reports whether the visit was stamped as a first interaction.
// Legacy rows carry 'New'/'Old' spelled out, newer rows 'N'/'O'.
func (v Visit) IsNew() bool {
	switch strings.ToUpper(strings.TrimSpace(v.NewOld)) {
	case "N", "NEW":
		return true
	}
	return false
}

// Medicine model: a drug-only transaction not tied to a consultation.
// PatientID may be zero for walk-in purchases recorded by name only.
type Medicine struct {
	MedID         int       `gorm:"primaryKey;column:med_id" json:"med_id"`
	Date          string    `gorm:"column:date;not null;index" json:"date"`
	PatientName   string    `gorm:"column:patient_name;not null;index" json:"patient_name"`
	PhoneNo       string    `gorm:"column:phone_no;index" json:"phone_no"`
	DrugFee       float64   `gorm:"column:drug_fee;not null" json:"drug_fee"`
	PaymentMethod string    `gorm:"column:payment_method;not null" json:"payment_method"`
	PatientID     int       `gorm:"column:patient_id;index" json:"patient_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
