package models

import (
	"testing"
	"time"
)

func validAppointment() Appointment {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	return Appointment{
		ID:        "appt-1",
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    AppointmentScheduled,
	}
}

func TestAppointmentValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Appointment)
		wantErr bool
	}{
		{"valid", func(*Appointment) {}, false},
		{"end equals start", func(a *Appointment) { a.EndTime = a.StartTime }, true},
		{"end before start", func(a *Appointment) { a.EndTime = a.StartTime.Add(-time.Minute) }, true},
		{"missing patient", func(a *Appointment) { a.PatientID = "" }, true},
		{"missing doctor", func(a *Appointment) { a.DoctorID = "" }, true},
		{"unknown status", func(a *Appointment) { a.Status = "Pending" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAppointment()
			tt.mutate(&a)
			err := a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPatientValidate(t *testing.T) {
	valid := Patient{
		ID:          "patient-1",
		FirstName:   "Ama",
		LastName:    "Owusu",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Sex:         SexFemale,
		Phone:       "+233111100001",
	}

	tests := []struct {
		name    string
		mutate  func(*Patient)
		wantErr bool
	}{
		{"valid without email", func(*Patient) {}, false},
		{"valid with email", func(p *Patient) { email := "ama@clinicbook.example"; p.Email = &email }, false},
		{"malformed email", func(p *Patient) { email := "not-an-email"; p.Email = &email }, true},
		{"unknown sex", func(p *Patient) { p.Sex = "Q" }, true},
		{"missing phone", func(p *Patient) { p.Phone = "" }, true},
		{"missing date of birth", func(p *Patient) { p.DateOfBirth = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrescriptionItemValidate(t *testing.T) {
	valid := PrescriptionItem{
		PrescriptionID: "rx-1",
		MedicationID:   "med-1",
		Dosage:         "500mg",
		Quantity:       21,
	}

	tests := []struct {
		name    string
		mutate  func(*PrescriptionItem)
		wantErr bool
	}{
		{"valid", func(*PrescriptionItem) {}, false},
		{"zero quantity", func(pi *PrescriptionItem) { pi.Quantity = 0 }, true},
		{"negative quantity", func(pi *PrescriptionItem) { pi.Quantity = -3 }, true},
		{"missing dosage", func(pi *PrescriptionItem) { pi.Dosage = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pi := valid
			tt.mutate(&pi)
			err := pi.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaymentValidate(t *testing.T) {
	valid := Payment{
		ID:        "pay-1",
		InvoiceID: "inv-1",
		Amount:    50,
		PaidAt:    time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		Method:    PaymentCash,
	}

	tests := []struct {
		name    string
		mutate  func(*Payment)
		wantErr bool
	}{
		{"valid", func(*Payment) {}, false},
		{"zero amount", func(p *Payment) { p.Amount = 0 }, true},
		{"negative amount", func(p *Payment) { p.Amount = -5 }, true},
		{"unknown method", func(p *Payment) { p.Method = "Barter" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
