package store

import (
	"fmt"

	"ClinicBook/models"
)

// uniqueKey is one uniqueness constraint instance: the named column tuple
// together with the values the candidate record carries for it.
type uniqueKey struct {
	name    string
	columns []string
	values  []interface{}
	skip    bool // optional field not set, constraint does not apply
}

// reference is one foreign reference carried by a record.
type reference struct {
	column      string
	parentTable string
	value       string
	optional    bool
}

// schemaOf returns the uniqueness and reference descriptors for a record.
// Field-level checks live on the models as Validate methods; delete
// policies live in the Registry.
func schemaOf(rec interface{}) ([]uniqueKey, []reference, error) {
	switch v := rec.(type) {
	case *models.Doctor:
		return []uniqueKey{
			{name: "doctor email", columns: []string{"email"}, values: []interface{}{v.Email}},
			{name: "doctor phone", columns: []string{"phone"}, values: []interface{}{v.Phone}},
			{name: "doctor license number", columns: []string{"license_number"}, values: []interface{}{v.LicenseNumber}},
		}, nil, nil

	case *models.Specialty:
		return []uniqueKey{
			{name: "specialty name", columns: []string{"name"}, values: []interface{}{v.Name}},
		}, nil, nil

	case *models.DoctorSpecialty:
		return []uniqueKey{
				{name: "doctor specialty link", columns: []string{"doctor_id", "specialty_id"}, values: []interface{}{v.DoctorID, v.SpecialtyID}},
			}, []reference{
				{column: "doctor_id", parentTable: "doctor", value: v.DoctorID},
				{column: "specialty_id", parentTable: "specialty", value: v.SpecialtyID},
			}, nil

	case *models.Patient:
		email, hasEmail := optString(v.Email)
		nationalID, hasNationalID := optString(v.NationalID)
		return []uniqueKey{
			{name: "patient email", columns: []string{"email"}, values: []interface{}{email}, skip: !hasEmail},
			{name: "patient phone", columns: []string{"phone"}, values: []interface{}{v.Phone}},
			{name: "patient national id", columns: []string{"national_id"}, values: []interface{}{nationalID}, skip: !hasNationalID},
		}, nil, nil

	case *models.Room:
		return []uniqueKey{
			{name: "room number", columns: []string{"room_number"}, values: []interface{}{v.RoomNumber}},
		}, nil, nil

	case *models.Appointment:
		roomID, hasRoom := optString(v.RoomID)
		return []uniqueKey{
				{name: "doctor start time", columns: []string{"doctor_id", "start_time"}, values: []interface{}{v.DoctorID, v.StartTime}},
			}, []reference{
				{column: "patient_id", parentTable: "patient", value: v.PatientID},
				{column: "doctor_id", parentTable: "doctor", value: v.DoctorID},
				{column: "room_id", parentTable: "room", value: roomID, optional: !hasRoom},
			}, nil

	case *models.Prescription:
		return []uniqueKey{
				{name: "prescription appointment", columns: []string{"appointment_id"}, values: []interface{}{v.AppointmentID}},
			}, []reference{
				{column: "appointment_id", parentTable: "appointment", value: v.AppointmentID},
			}, nil

	case *models.Medication:
		return []uniqueKey{
			{name: "medication name", columns: []string{"name"}, values: []interface{}{v.Name}},
		}, nil, nil

	case *models.PrescriptionItem:
		return []uniqueKey{
				{name: "prescription item link", columns: []string{"prescription_id", "medication_id"}, values: []interface{}{v.PrescriptionID, v.MedicationID}},
			}, []reference{
				{column: "prescription_id", parentTable: "prescription", value: v.PrescriptionID},
				{column: "medication_id", parentTable: "medication", value: v.MedicationID},
			}, nil

	case *models.Invoice:
		return []uniqueKey{
				{name: "invoice appointment", columns: []string{"appointment_id"}, values: []interface{}{v.AppointmentID}},
			}, []reference{
				{column: "appointment_id", parentTable: "appointment", value: v.AppointmentID},
			}, nil

	case *models.Payment:
		return nil, []reference{
			{column: "invoice_id", parentTable: "invoice", value: v.InvoiceID},
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown record type %T", rec)
	}
}

// primaryCond returns the primary key condition for a record, used to
// address the row and to exclude it from its own uniqueness checks.
func primaryCond(rec interface{}) (map[string]interface{}, error) {
	switch v := rec.(type) {
	case *models.Doctor:
		return map[string]interface{}{"id": v.ID}, nil
	case *models.Specialty:
		return map[string]interface{}{"id": v.ID}, nil
	case *models.DoctorSpecialty:
		return map[string]interface{}{"doctor_id": v.DoctorID, "specialty_id": v.SpecialtyID}, nil
	case *models.Patient:
		return map[string]interface{}{"id": v.ID}, nil
	case *models.Room:
		return map[string]interface{}{"id": v.ID}, nil
	case *models.Appointment:
		return map[string]interface{}{"id": v.ID}, nil
	case *models.Prescription:
		return map[string]interface{}{"id": v.ID}, nil
	case *models.Medication:
		return map[string]interface{}{"id": v.ID}, nil
	case *models.PrescriptionItem:
		return map[string]interface{}{"prescription_id": v.PrescriptionID, "medication_id": v.MedicationID}, nil
	case *models.Invoice:
		return map[string]interface{}{"id": v.ID}, nil
	case *models.Payment:
		return map[string]interface{}{"id": v.ID}, nil
	default:
		return nil, fmt.Errorf("unknown record type %T", rec)
	}
}

func optString(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}
