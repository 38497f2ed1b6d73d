package utils

import (
	"MedicareClinic/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPatient() models.Patient {
	return models.Patient{
		Name:        "Asha Rao",
		Sex:         "F",
		PhoneNo:     "9876543210",
		YearOfBirth: 1990,
	}
}

func TestValidatePatientData(t *testing.T) {
	assert.NoError(t, ValidatePatientData(validPatient()))

	p := validPatient()
	p.Name = "A"
	assert.Error(t, ValidatePatientData(p), "single-character name")

	p = validPatient()
	p.Sex = "X"
	assert.Error(t, ValidatePatientData(p), "sex outside M/F")

	p = validPatient()
	p.YearOfBirth = 1850
	assert.Error(t, ValidatePatientData(p), "year of birth before 1900")

	p = validPatient()
	p.PhoneNo = "123"
	assert.Error(t, ValidatePatientData(p), "phone too short")
}

func validVisit() models.Visit {
	return models.Visit{
		PatientID:        4,
		Date:             "2026-08-30",
		ConsultationType: "Dermatology",
		ConsultationFee:  500,
		PaymentMethod:    "Cash",
	}
}

func TestValidateVisitData(t *testing.T) {
	assert.NoError(t, ValidateVisitData(validVisit()))

	v := validVisit()
	v.Date = "30-08-2026"
	assert.Error(t, ValidateVisitData(v), "date must be YYYY-MM-DD")

	v = validVisit()
	v.PatientID = 0
	assert.Error(t, ValidateVisitData(v), "visit needs a patient")

	v = validVisit()
	v.DrugFee = -10
	assert.Error(t, ValidateVisitData(v), "negative fee")
}

func TestValidateMedicineData(t *testing.T) {
	medicine := models.Medicine{
		Date:          "2026-08-30",
		PatientName:   "Ravi Kumar",
		DrugFee:       150,
		PaymentMethod: "GPay",
	}
	assert.NoError(t, ValidateMedicineData(medicine))

	medicine.PatientName = ""
	assert.Error(t, ValidateMedicineData(medicine))
}

func TestValidatePrescriptionMedicines(t *testing.T) {
	assert.NoError(t, ValidatePrescriptionMedicines([]models.PrescriptionMedicine{
		{MedicineName: "Tab Fluconazole 150mg"},
	}))
	assert.Error(t, ValidatePrescriptionMedicines([]models.PrescriptionMedicine{
		{MedicineName: "Tab Fluconazole 150mg"},
		{Quantity: "1 tablet"},
	}))
	assert.NoError(t, ValidatePrescriptionMedicines(nil))
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, validatePassword("Ab1!"), ErrPasswordTooShort)
	assert.ErrorIs(t, validatePassword("alllowercase1!"), ErrPasswordNotComplex)
	assert.ErrorIs(t, validatePassword("NoDigitsHere!"), ErrPasswordNotComplex)
	assert.NoError(t, validatePassword("Sufficient1!"))
}
