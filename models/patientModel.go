package models

import (
	"time"
)

// Patient model
type Patient struct {
	PatientID   int       `gorm:"primaryKey;column:patient_id" json:"patient_id"`
	Name        string    `gorm:"column:name;not null;index" json:"name"`
	Sex         string    `gorm:"column:sex;check:sex IN ('M', 'F');not null" json:"sex"`
	PhoneNo     string    `gorm:"column:phone_no;not null;index" json:"phone_no"`
	YearOfBirth int       `gorm:"column:year_of_birth;not null" json:"year_of_birth"`
	Hometown    string    `gorm:"column:hometown" json:"hometown"`
	PicFilename string    `gorm:"column:pic_filename" json:"pic_filename"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Age derives the patient's age for the given calendar year.
func (p Patient) Age(year int) int {
	return year - p.YearOfBirth
}
