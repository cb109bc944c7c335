package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ClinicBook/database"
	"ClinicBook/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// An in-memory sqlite database exists per connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return New(db, ClinicRegistry())
}

func mustCreate(t *testing.T, s *Store, rec interface{}) {
	t.Helper()
	if err := s.Create(context.Background(), rec); err != nil {
		t.Fatalf("failed to create %T: %v", rec, err)
	}
}

func count(t *testing.T, s *Store, table string, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := s.db.Table(table)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("failed to count %s rows: %v", table, err)
	}
	return n
}

func strPtr(s string) *string { return &s }

var fixtureSeq int

func newDoctor() *models.Doctor {
	fixtureSeq++
	return &models.Doctor{
		ID:            uuid.New().String(),
		FirstName:     "Grace",
		LastName:      "Mensah",
		Email:         fmt.Sprintf("doctor%d@clinicbook.example", fixtureSeq),
		Phone:         fmt.Sprintf("+2330000%04d", fixtureSeq),
		LicenseNumber: fmt.Sprintf("LIC-%04d", fixtureSeq),
		HireDate:      time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
}

func newPatient() *models.Patient {
	fixtureSeq++
	return &models.Patient{
		ID:          uuid.New().String(),
		FirstName:   "Ama",
		LastName:    "Owusu",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Sex:         models.SexFemale,
		Phone:       fmt.Sprintf("+2331111%04d", fixtureSeq),
	}
}

func newRoom() *models.Room {
	fixtureSeq++
	return &models.Room{
		ID:         uuid.New().String(),
		RoomNumber: fmt.Sprintf("R-%04d", fixtureSeq),
		RoomType:   models.RoomConsultation,
		Status:     models.RoomAvailable,
	}
}

func newAppointment(doctorID, patientID string, start time.Time) *models.Appointment {
	return &models.Appointment{
		ID:        uuid.New().String(),
		PatientID: patientID,
		DoctorID:  doctorID,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    models.AppointmentScheduled,
		Reason:    "checkup",
	}
}

func TestCreateRejectsDuplicateUniqueField(t *testing.T) {
	s := newTestStore(t)

	first := newDoctor()
	mustCreate(t, s, first)

	dup := newDoctor()
	dup.Email = first.Email

	err := s.Create(context.Background(), dup)
	if !errors.Is(err, ErrUniquenessViolation) {
		t.Fatalf("expected uniqueness violation, got %v", err)
	}
	if n := count(t, s, "doctor", ""); n != 1 {
		t.Fatalf("expected 1 doctor row, got %d", n)
	}
}

func TestCreateRejectsDuplicateUniqueTuple(t *testing.T) {
	s := newTestStore(t)

	doctor := newDoctor()
	patient := newPatient()
	other := newPatient()
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)
	mustCreate(t, s, other)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	mustCreate(t, s, newAppointment(doctor.ID, patient.ID, start))

	// Same doctor, same start time, different patient.
	err := s.Create(context.Background(), newAppointment(doctor.ID, other.ID, start))
	if !errors.Is(err, ErrUniquenessViolation) {
		t.Fatalf("expected uniqueness violation, got %v", err)
	}

	// Same start time with another doctor is fine.
	second := newDoctor()
	mustCreate(t, s, second)
	mustCreate(t, s, newAppointment(second.ID, other.ID, start))
}

func TestNullableUniqueFieldsIgnoreAbsentValues(t *testing.T) {
	s := newTestStore(t)

	first := newPatient()
	second := newPatient()
	mustCreate(t, s, first)
	mustCreate(t, s, second) // both without email or national id

	third := newPatient()
	third.Email = strPtr("ama@clinicbook.example")
	mustCreate(t, s, third)

	fourth := newPatient()
	fourth.Email = strPtr("ama@clinicbook.example")
	err := s.Create(context.Background(), fourth)
	if !errors.Is(err, ErrUniquenessViolation) {
		t.Fatalf("expected uniqueness violation for duplicate email, got %v", err)
	}
}

func TestCreateRejectsUnresolvedReference(t *testing.T) {
	s := newTestStore(t)

	doctor := newDoctor()
	mustCreate(t, s, doctor)

	appt := newAppointment(doctor.ID, uuid.New().String(), time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	err := s.Create(context.Background(), appt)
	if !errors.Is(err, ErrReferenceViolation) {
		t.Fatalf("expected reference violation, got %v", err)
	}
	if n := count(t, s, "appointment", ""); n != 0 {
		t.Fatalf("expected no appointment rows, got %d", n)
	}
}

func TestOptionalReferenceMayBeAbsentButMustResolve(t *testing.T) {
	s := newTestStore(t)

	doctor := newDoctor()
	patient := newPatient()
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)

	// No room at all is fine.
	mustCreate(t, s, newAppointment(doctor.ID, patient.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)))

	// A room id that does not resolve is not.
	appt := newAppointment(doctor.ID, patient.ID, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	appt.RoomID = strPtr(uuid.New().String())
	err := s.Create(context.Background(), appt)
	if !errors.Is(err, ErrReferenceViolation) {
		t.Fatalf("expected reference violation for dangling room, got %v", err)
	}
}

func TestCreateRejectsFieldCheckFailures(t *testing.T) {
	s := newTestStore(t)

	doctor := newDoctor()
	patient := newPatient()
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	inverted := newAppointment(doctor.ID, patient.ID, start)
	inverted.EndTime = start.Add(-10 * time.Minute)

	badSex := newPatient()
	badSex.Sex = "Q"

	badDoctor := newDoctor()
	badDoctor.Email = "not-an-email"

	tests := []struct {
		name string
		rec  interface{}
	}{
		{"inverted appointment time range", inverted},
		{"unknown sex value", badSex},
		{"malformed doctor email", badDoctor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Create(context.Background(), tt.rec)
			if !errors.Is(err, ErrConstraintViolation) {
				t.Fatalf("expected constraint violation, got %v", err)
			}
		})
	}
}

func TestUpdateRevalidatesAndExcludesSelf(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := newDoctor()
	second := newDoctor()
	mustCreate(t, s, first)
	mustCreate(t, s, second)

	// Keeping its own unique values must not collide with itself.
	first.LastName = "Boateng"
	if err := s.Update(ctx, first); err != nil {
		t.Fatalf("update with unchanged unique fields failed: %v", err)
	}

	// Taking another row's unique value must.
	first.Email = second.Email
	err := s.Update(ctx, first)
	if !errors.Is(err, ErrUniquenessViolation) {
		t.Fatalf("expected uniqueness violation, got %v", err)
	}

	// Field checks apply to updates as well.
	second.Phone = ""
	err = s.Update(ctx, second)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
}

func TestUpdateUnknownRecordReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	ghost := newDoctor()
	err := s.Update(context.Background(), ghost)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteRestrictBlocksWhileDependentsExist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doctor := newDoctor()
	patient := newPatient()
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)

	appt := newAppointment(doctor.ID, patient.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	mustCreate(t, s, appt)

	for _, table := range []string{"doctor", "patient"} {
		id := doctor.ID
		if table == "patient" {
			id = patient.ID
		}
		err := s.Delete(ctx, table, id)
		if !errors.Is(err, ErrReferenceViolation) {
			t.Fatalf("expected delete of %s to be blocked, got %v", table, err)
		}
	}

	// Once the appointment is gone, both deletes go through.
	if err := s.Delete(ctx, "appointment", appt.ID); err != nil {
		t.Fatalf("failed to delete appointment: %v", err)
	}
	if err := s.Delete(ctx, "doctor", doctor.ID); err != nil {
		t.Fatalf("failed to delete doctor: %v", err)
	}
	if err := s.Delete(ctx, "patient", patient.ID); err != nil {
		t.Fatalf("failed to delete patient: %v", err)
	}
}

func TestDeleteCascadesThroughChain(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doctor := newDoctor()
	patient := newPatient()
	medication := &models.Medication{ID: uuid.New().String(), Name: "Amoxicillin 500mg", Unit: "capsule"}
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)
	mustCreate(t, s, medication)

	appt := newAppointment(doctor.ID, patient.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	mustCreate(t, s, appt)

	prescription := &models.Prescription{ID: uuid.New().String(), AppointmentID: appt.ID, Notes: "after meals"}
	mustCreate(t, s, prescription)
	mustCreate(t, s, &models.PrescriptionItem{
		PrescriptionID: prescription.ID,
		MedicationID:   medication.ID,
		Dosage:         "500mg",
		Quantity:       21,
	})

	invoice := &models.Invoice{
		ID:            uuid.New().String(),
		AppointmentID: appt.ID,
		AmountDue:     150,
		Status:        models.InvoiceUnpaid,
		IssuedAt:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	mustCreate(t, s, invoice)
	mustCreate(t, s, &models.Payment{
		ID:        uuid.New().String(),
		InvoiceID: invoice.ID,
		Amount:    50,
		PaidAt:    time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		Method:    models.PaymentCash,
	})

	if err := s.Delete(ctx, "appointment", appt.ID); err != nil {
		t.Fatalf("failed to delete appointment: %v", err)
	}

	for _, table := range []string{"appointment", "prescription", "prescription_item", "invoice", "payment"} {
		if n := count(t, s, table, ""); n != 0 {
			t.Fatalf("expected %s to be empty after cascade, found %d row(s)", table, n)
		}
	}

	// Rows not on the chain survive.
	if n := count(t, s, "medication", ""); n != 1 {
		t.Fatalf("cascade must not touch the medication catalog, found %d row(s)", n)
	}
}

func TestDeleteClearsOptionalReferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doctor := newDoctor()
	patient := newPatient()
	room := newRoom()
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)
	mustCreate(t, s, room)

	appt := newAppointment(doctor.ID, patient.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	appt.RoomID = &room.ID
	mustCreate(t, s, appt)

	if err := s.Delete(ctx, "room", room.ID); err != nil {
		t.Fatalf("failed to delete room: %v", err)
	}

	var got models.Appointment
	if err := s.Get(ctx, &got, appt.ID); err != nil {
		t.Fatalf("failed to load appointment: %v", err)
	}
	if got.RoomID != nil {
		t.Fatalf("expected room reference to be cleared, got %q", *got.RoomID)
	}
}

func TestDeleteUnknownRecordReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.Delete(context.Background(), "doctor", uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateAllIsAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doctor := newDoctor()
	patient := newPatient()
	medication := &models.Medication{ID: uuid.New().String(), Name: "Ibuprofen 200mg", Unit: "tablet"}
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)
	mustCreate(t, s, medication)

	appt := newAppointment(doctor.ID, patient.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	mustCreate(t, s, appt)

	prescription := &models.Prescription{ID: uuid.New().String(), AppointmentID: appt.ID}
	badItem := &models.PrescriptionItem{
		PrescriptionID: prescription.ID,
		MedicationID:   medication.ID,
		Dosage:         "200mg",
		Quantity:       0, // violates quantity > 0
	}

	err := s.CreateAll(ctx, prescription, badItem)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}

	if n := count(t, s, "prescription", ""); n != 0 {
		t.Fatalf("expected rollback to remove the prescription, found %d row(s)", n)
	}
	if n := count(t, s, "prescription_item", ""); n != 0 {
		t.Fatalf("expected rollback to remove the items, found %d row(s)", n)
	}
}

func TestCompositeKeyLinkLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doctor := newDoctor()
	specialty := &models.Specialty{ID: uuid.New().String(), Name: "Cardiology (test)"}
	mustCreate(t, s, doctor)
	mustCreate(t, s, specialty)

	link := &models.DoctorSpecialty{DoctorID: doctor.ID, SpecialtyID: specialty.ID}
	mustCreate(t, s, link)

	// The same pair cannot be linked twice.
	err := s.Create(ctx, &models.DoctorSpecialty{DoctorID: doctor.ID, SpecialtyID: specialty.ID})
	if !errors.Is(err, ErrUniquenessViolation) {
		t.Fatalf("expected uniqueness violation, got %v", err)
	}

	// The specialty cannot be deleted while linked.
	err = s.Delete(ctx, "specialty", specialty.ID)
	if !errors.Is(err, ErrReferenceViolation) {
		t.Fatalf("expected restrict to block specialty delete, got %v", err)
	}

	// Deleting the doctor cascades into the link, freeing the specialty.
	if err := s.Delete(ctx, "doctor", doctor.ID); err != nil {
		t.Fatalf("failed to delete doctor: %v", err)
	}
	if n := count(t, s, "doctor_specialty", ""); n != 0 {
		t.Fatalf("expected links to be gone, found %d row(s)", n)
	}
	if err := s.Delete(ctx, "specialty", specialty.ID); err != nil {
		t.Fatalf("failed to delete specialty after unlink: %v", err)
	}
}

func TestCreateWithUpdateCommitsOrRollsBackTogether(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doctor := newDoctor()
	patient := newPatient()
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)

	appt := newAppointment(doctor.ID, patient.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	mustCreate(t, s, appt)

	invoice := &models.Invoice{
		ID:            uuid.New().String(),
		AppointmentID: appt.ID,
		AmountDue:     100,
		Status:        models.InvoiceUnpaid,
		IssuedAt:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	mustCreate(t, s, invoice)

	// A bad payment must roll back the invoice rewrite with it.
	invoice.AmountPaid = 60
	invoice.Status = models.InvoicePartiallyPaid
	bad := &models.Payment{
		ID:        uuid.New().String(),
		InvoiceID: invoice.ID,
		Amount:    -60,
		PaidAt:    time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		Method:    models.PaymentCash,
	}
	err := s.CreateWithUpdate(ctx, bad, invoice)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}

	var got models.Invoice
	if err := s.Get(ctx, &got, invoice.ID); err != nil {
		t.Fatalf("failed to load invoice: %v", err)
	}
	if got.AmountPaid != 0 || got.Status != models.InvoiceUnpaid {
		t.Fatalf("invoice rewrite leaked past rollback: paid=%v status=%s", got.AmountPaid, got.Status)
	}
	if n := count(t, s, "payment", ""); n != 0 {
		t.Fatalf("expected no payment rows after rollback, found %d", n)
	}

	// A good payment commits both writes.
	good := &models.Payment{
		ID:        uuid.New().String(),
		InvoiceID: invoice.ID,
		Amount:    60,
		PaidAt:    time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		Method:    models.PaymentCash,
	}
	if err := s.CreateWithUpdate(ctx, good, invoice); err != nil {
		t.Fatalf("CreateWithUpdate failed: %v", err)
	}
	if err := s.Get(ctx, &got, invoice.ID); err != nil {
		t.Fatalf("failed to load invoice: %v", err)
	}
	if got.AmountPaid != 60 || got.Status != models.InvoicePartiallyPaid {
		t.Fatalf("invoice rollup not applied: paid=%v status=%s", got.AmountPaid, got.Status)
	}
	if n := count(t, s, "payment", ""); n != 1 {
		t.Fatalf("expected 1 payment row, found %d", n)
	}
}

func TestAppointmentAttachmentsAreOneToOne(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doctor := newDoctor()
	patient := newPatient()
	mustCreate(t, s, doctor)
	mustCreate(t, s, patient)

	appt := newAppointment(doctor.ID, patient.ID, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	mustCreate(t, s, appt)

	mustCreate(t, s, &models.Prescription{ID: uuid.New().String(), AppointmentID: appt.ID})
	err := s.Create(ctx, &models.Prescription{ID: uuid.New().String(), AppointmentID: appt.ID})
	if !errors.Is(err, ErrUniquenessViolation) {
		t.Fatalf("expected second prescription to be rejected, got %v", err)
	}

	issued := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	mustCreate(t, s, &models.Invoice{ID: uuid.New().String(), AppointmentID: appt.ID, AmountDue: 80, Status: models.InvoiceUnpaid, IssuedAt: issued})
	err = s.Create(ctx, &models.Invoice{ID: uuid.New().String(), AppointmentID: appt.ID, AmountDue: 90, Status: models.InvoiceUnpaid, IssuedAt: issued})
	if !errors.Is(err, ErrUniquenessViolation) {
		t.Fatalf("expected second invoice to be rejected, got %v", err)
	}
}

func TestDeleteCompositeRemovesOnlyAddressedLink(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doctor := newDoctor()
	first := &models.Specialty{ID: uuid.New().String(), Name: "Dermatology (test)"}
	second := &models.Specialty{ID: uuid.New().String(), Name: "Pediatrics (test)"}
	mustCreate(t, s, doctor)
	mustCreate(t, s, first)
	mustCreate(t, s, second)
	mustCreate(t, s, &models.DoctorSpecialty{DoctorID: doctor.ID, SpecialtyID: first.ID})
	mustCreate(t, s, &models.DoctorSpecialty{DoctorID: doctor.ID, SpecialtyID: second.ID})

	if err := s.DeleteComposite(ctx, &models.DoctorSpecialty{DoctorID: doctor.ID, SpecialtyID: first.ID}); err != nil {
		t.Fatalf("failed to delete link: %v", err)
	}
	if n := count(t, s, "doctor_specialty", "specialty_id = ?", second.ID); n != 1 {
		t.Fatalf("expected the other link to survive, found %d row(s)", n)
	}

	// Deleting it again reports not found.
	err := s.DeleteComposite(ctx, &models.DoctorSpecialty{DoctorID: doctor.ID, SpecialtyID: first.ID})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetUnknownRecordReturnsNotFound(t *testing.T) {
	s := newTestStore(t)

	var doctor models.Doctor
	err := s.Get(context.Background(), &doctor, uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
