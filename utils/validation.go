package utils

import (
	"MedicareClinic/models"
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrInvalidResetCode   = errors.New("invalid reset code")
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidatePatientData validates a patient registration form.
func ValidatePatientData(patient models.Patient) error {
	currentYear := time.Now().Year()
	return validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&patient.Sex, validation.Required, validation.In("M", "F")),
		validation.Field(&patient.PhoneNo, validation.Required, validation.Length(5, 20)),
		validation.Field(&patient.YearOfBirth, validation.Required, validation.Min(1900), validation.Max(currentYear)),
	)
}

// ValidateVisitData validates a visit entry form. Fees must be non-negative
// and the date must be a plain YYYY-MM-DD value.
func ValidateVisitData(visit models.Visit) error {
	return validation.ValidateStruct(&visit,
		validation.Field(&visit.PatientID, validation.Required, validation.Min(1)),
		validation.Field(&visit.Date, validation.Required, validation.Match(dateRe).Error("must be YYYY-MM-DD")),
		validation.Field(&visit.ConsultationType, validation.Required),
		validation.Field(&visit.ConsultationFee, validation.Min(0.0)),
		validation.Field(&visit.DrugFee, validation.Min(0.0)),
		validation.Field(&visit.ProcedureFee, validation.Min(0.0)),
		validation.Field(&visit.PaymentMethod, validation.Required),
	)
}

// ValidateMedicineData validates a drug-purchase entry form.
func ValidateMedicineData(medicine models.Medicine) error {
	return validation.ValidateStruct(&medicine,
		validation.Field(&medicine.Date, validation.Required, validation.Match(dateRe).Error("must be YYYY-MM-DD")),
		validation.Field(&medicine.PatientName, validation.Required, validation.Length(2, 200)),
		validation.Field(&medicine.DrugFee, validation.Min(0.0)),
		validation.Field(&medicine.PaymentMethod, validation.Required),
	)
}

// ValidatePrescriptionMedicines checks that every line item carries a
// medicine name.
func ValidatePrescriptionMedicines(items []models.PrescriptionMedicine) error {
	for _, item := range items {
		if err := validation.Validate(item.MedicineName, validation.Required, validation.Length(1, 300)); err != nil {
			return errors.New("each prescription line item needs a medicine name")
		}
	}
	return nil
}

// ValidateUserData validates user data using ozzo-validation.
func ValidateUserData(user models.User) error {
	return validation.ValidateStruct(&user,
		validation.Field(&user.Screenname, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	return validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
