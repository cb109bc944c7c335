package models

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Field-level check constraints. Each model validates itself; the store
// evaluates these before any row is written.

// Validate checks doctor field constraints.
func (d Doctor) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&d.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&d.Email, validation.Required, is.EmailFormat),
		validation.Field(&d.Phone, validation.Required, validation.Length(3, 30)),
		validation.Field(&d.LicenseNumber, validation.Required, validation.Length(1, 50)),
		validation.Field(&d.HireDate, validation.Required),
	)
}

// Validate checks specialty field constraints.
func (s Specialty) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
	)
}

// Validate checks that both sides of the link are present.
func (ds DoctorSpecialty) Validate() error {
	return validation.ValidateStruct(&ds,
		validation.Field(&ds.DoctorID, validation.Required),
		validation.Field(&ds.SpecialtyID, validation.Required),
	)
}

// Validate checks patient field constraints.
func (p Patient) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.DateOfBirth, validation.Required),
		validation.Field(&p.Sex, validation.Required, validation.In(SexFemale, SexMale, SexUnspecified)),
		validation.Field(&p.Email, is.EmailFormat),
		validation.Field(&p.Phone, validation.Required, validation.Length(3, 30)),
	)
}

// Validate checks room field constraints.
func (r Room) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RoomNumber, validation.Required, validation.Length(1, 20)),
		validation.Field(&r.RoomType, validation.Required, validation.In(RoomConsultation, RoomLab, RoomSurgery, RoomOther)),
		validation.Field(&r.Status, validation.Required, validation.In(RoomAvailable, RoomUnavailable)),
	)
}

// Validate checks appointment field constraints, including the time
// ordering rule end_time > start_time.
func (a Appointment) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.PatientID, validation.Required),
		validation.Field(&a.DoctorID, validation.Required),
		validation.Field(&a.StartTime, validation.Required),
		validation.Field(&a.EndTime, validation.Required, validation.By(func(interface{}) error {
			if !a.EndTime.After(a.StartTime) {
				return errors.New("must be after start_time")
			}
			return nil
		})),
		validation.Field(&a.Status, validation.Required, validation.In(
			AppointmentScheduled, AppointmentCheckedIn, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow,
		)),
	)
}

// Validate checks prescription field constraints.
func (p Prescription) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.AppointmentID, validation.Required),
	)
}

// Validate checks medication field constraints.
func (m Medication) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&m.Unit, validation.Required, validation.Length(1, 20)),
	)
}

// Validate checks prescription item field constraints.
func (pi PrescriptionItem) Validate() error {
	return validation.ValidateStruct(&pi,
		validation.Field(&pi.PrescriptionID, validation.Required),
		validation.Field(&pi.MedicationID, validation.Required),
		validation.Field(&pi.Dosage, validation.Required),
		validation.Field(&pi.Quantity, validation.Required, validation.Min(1)),
	)
}

// Validate checks invoice field constraints.
func (i Invoice) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.AppointmentID, validation.Required),
		validation.Field(&i.AmountDue, validation.Min(0.0)),
		validation.Field(&i.AmountPaid, validation.Min(0.0)),
		validation.Field(&i.Status, validation.Required, validation.In(
			InvoiceUnpaid, InvoicePartiallyPaid, InvoicePaid, InvoiceVoided,
		)),
		validation.Field(&i.IssuedAt, validation.Required),
	)
}

// Validate checks payment field constraints.
func (p Payment) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.InvoiceID, validation.Required),
		validation.Field(&p.Amount, validation.By(func(interface{}) error {
			if p.Amount <= 0 {
				return errors.New("must be greater than zero")
			}
			return nil
		})),
		validation.Field(&p.PaidAt, validation.Required),
		validation.Field(&p.Method, validation.Required, validation.In(
			PaymentCash, PaymentCard, PaymentMobileMoney, PaymentInsurance,
		)),
	)
}
