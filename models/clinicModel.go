package models

import (
	"time"
)

// Sex values accepted for a patient record.
type Sex string

const (
	SexFemale      Sex = "F"
	SexMale        Sex = "M"
	SexUnspecified Sex = "X"
)

// RoomType classifies a room.
type RoomType string

const (
	RoomConsultation RoomType = "Consultation"
	RoomLab          RoomType = "Lab"
	RoomSurgery      RoomType = "Surgery"
	RoomOther        RoomType = "Other"
)

// RoomStatus is the availability flag of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomUnavailable RoomStatus = "Unavailable"
)

// AppointmentStatus values. The schema does not constrain transitions
// between them; they are plain enum fields.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCheckedIn AppointmentStatus = "CheckedIn"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
	AppointmentNoShow    AppointmentStatus = "NoShow"
)

// InvoiceStatus values.
type InvoiceStatus string

const (
	InvoiceUnpaid        InvoiceStatus = "Unpaid"
	InvoicePartiallyPaid InvoiceStatus = "PartiallyPaid"
	InvoicePaid          InvoiceStatus = "Paid"
	InvoiceVoided        InvoiceStatus = "Voided"
)

// PaymentMethod values.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "Cash"
	PaymentCard        PaymentMethod = "Card"
	PaymentMobileMoney PaymentMethod = "MobileMoney"
	PaymentInsurance   PaymentMethod = "Insurance"
)

// Doctor model
type Doctor struct {
	ID            string            `gorm:"primaryKey;column:id" json:"id"`
	FirstName     string            `gorm:"column:first_name;not null;index:idx_doctor_name,priority:2" json:"first_name"`
	LastName      string            `gorm:"column:last_name;not null;index:idx_doctor_name,priority:1" json:"last_name"`
	Email         string            `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Phone         string            `gorm:"column:phone;not null;uniqueIndex" json:"phone"`
	LicenseNumber string            `gorm:"column:license_number;not null;uniqueIndex" json:"license_number"`
	HireDate      time.Time         `gorm:"column:hire_date;type:date;not null" json:"hire_date"`
	Active        bool              `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Specialties   []DoctorSpecialty `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Appointments  []Appointment     `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Specialty model
type Specialty struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Description string `gorm:"column:description" json:"description"`
}

func (Specialty) TableName() string {
	return "specialty"
}

// DoctorSpecialty is the doctor/specialty join row. Its identity is the
// pair of references.
type DoctorSpecialty struct {
	DoctorID    string `gorm:"primaryKey;column:doctor_id" json:"doctor_id"`
	SpecialtyID string `gorm:"primaryKey;column:specialty_id" json:"specialty_id"`
}

func (DoctorSpecialty) TableName() string {
	return "doctor_specialty"
}

// Patient model
type Patient struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	FirstName    string        `gorm:"column:first_name;not null;index:idx_patient_name,priority:2" json:"first_name"`
	LastName     string        `gorm:"column:last_name;not null;index:idx_patient_name,priority:1" json:"last_name"`
	DateOfBirth  time.Time     `gorm:"column:date_of_birth;type:date;not null" json:"date_of_birth"`
	Sex          Sex           `gorm:"column:sex;type:varchar(1);not null;check:sex IN ('F', 'M', 'X')" json:"sex"`
	Email        *string       `gorm:"column:email;uniqueIndex" json:"email"`
	Phone        string        `gorm:"column:phone;not null;uniqueIndex" json:"phone"`
	NationalID   *string       `gorm:"column:national_id;uniqueIndex" json:"national_id"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Room model
type Room struct {
	ID         string     `gorm:"primaryKey;column:id" json:"id"`
	RoomNumber string     `gorm:"column:room_number;not null;uniqueIndex" json:"room_number"`
	RoomType   RoomType   `gorm:"column:room_type;type:varchar(20);not null" json:"room_type"`
	Status     RoomStatus `gorm:"column:status;type:varchar(20);not null;default:'Available'" json:"status"`
}

func (Room) TableName() string {
	return "room"
}

// Appointment model. The (doctor_id, start_time) pair is unique so a
// doctor cannot hold two appointments starting at the same instant.
// Overlap detection beyond that is application logic, not schema.
type Appointment struct {
	ID        string            `gorm:"primaryKey;column:id" json:"id"`
	PatientID string            `gorm:"column:patient_id;not null;index:idx_appointment_patient_start,priority:1" json:"patient_id"`
	DoctorID  string            `gorm:"column:doctor_id;not null;uniqueIndex:idx_doctor_start;index:idx_appointment_doctor_start,priority:1" json:"doctor_id"`
	RoomID    *string           `gorm:"column:room_id" json:"room_id"`
	StartTime time.Time         `gorm:"column:start_time;not null;uniqueIndex:idx_doctor_start;index:idx_appointment_doctor_start,priority:2;index:idx_appointment_patient_start,priority:2" json:"start_time"`
	EndTime   time.Time         `gorm:"column:end_time;not null;check:end_time > start_time" json:"end_time"`
	Status    AppointmentStatus `gorm:"column:status;type:varchar(20);not null;default:'Scheduled'" json:"status"`
	Reason    string            `gorm:"column:reason" json:"reason"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient   *Patient          `gorm:"foreignKey:PatientID;references:ID" json:"patient,omitempty"`
	Doctor    *Doctor           `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	Room      *Room             `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:SET NULL" json:"room,omitempty"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// Prescription model. appointment_id is unique, so each appointment has
// at most one prescription.
type Prescription struct {
	ID            string             `gorm:"primaryKey;column:id" json:"id"`
	AppointmentID string             `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	Notes         string             `gorm:"column:notes" json:"notes"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Items         []PrescriptionItem `gorm:"foreignKey:PrescriptionID;references:ID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Prescription) TableName() string {
	return "prescription"
}

// Medication catalog model
type Medication struct {
	ID   string `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Unit string `gorm:"column:unit;not null" json:"unit"`
}

func (Medication) TableName() string {
	return "medication"
}

// PrescriptionItem is the prescription/medication join row with payload.
type PrescriptionItem struct {
	PrescriptionID string `gorm:"primaryKey;column:prescription_id" json:"prescription_id"`
	MedicationID   string `gorm:"primaryKey;column:medication_id" json:"medication_id"`
	Dosage         string `gorm:"column:dosage;not null" json:"dosage"`
	Quantity       int    `gorm:"column:quantity;not null;check:quantity > 0" json:"quantity"`
	Instructions   string `gorm:"column:instructions" json:"instructions"`
}

func (PrescriptionItem) TableName() string {
	return "prescription_item"
}

// Invoice model. appointment_id is unique, so each appointment has at
// most one invoice.
type Invoice struct {
	ID            string        `gorm:"primaryKey;column:id" json:"id"`
	AppointmentID string        `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	AmountDue     float64       `gorm:"column:amount_due;type:decimal(10,2);not null;check:amount_due >= 0" json:"amount_due"`
	AmountPaid    float64       `gorm:"column:amount_paid;type:decimal(10,2);not null;default:0;check:amount_paid >= 0" json:"amount_paid"`
	Status        InvoiceStatus `gorm:"column:status;type:varchar(20);not null;default:'Unpaid'" json:"status"`
	IssuedAt      time.Time     `gorm:"column:issued_at;not null" json:"issued_at"`
	Payments      []Payment     `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

func (Invoice) TableName() string {
	return "invoice"
}

// Payment model
type Payment struct {
	ID        string        `gorm:"primaryKey;column:id" json:"id"`
	InvoiceID string        `gorm:"column:invoice_id;not null;index" json:"invoice_id"`
	Amount    float64       `gorm:"column:amount;type:decimal(10,2);not null;check:amount > 0" json:"amount"`
	PaidAt    time.Time     `gorm:"column:paid_at;not null" json:"paid_at"`
	Method    PaymentMethod `gorm:"column:method;type:varchar(20);not null" json:"method"`
}

func (Payment) TableName() string {
	return "payment"
}
