package store

// DeletePolicy selects what happens to dependent rows when their parent
// is deleted.
type DeletePolicy int

const (
	// Cascade deletes dependent rows together with the parent.
	Cascade DeletePolicy = iota
	// Restrict blocks the delete while dependent rows exist.
	Restrict
	// ClearReference keeps dependent rows but sets their reference column
	// to NULL.
	ClearReference
)

func (p DeletePolicy) String() string {
	switch p {
	case Cascade:
		return "cascade"
	case Restrict:
		return "restrict"
	case ClearReference:
		return "clear-reference"
	default:
		return "unknown"
	}
}

// Relationship declares one parent-child dependency and its delete policy.
// The registry built from these is the single source of truth for every
// cascade decision the store makes.
type Relationship struct {
	// ParentTable is the referenced table (e.g. "doctor").
	ParentTable string

	// ChildTable is the table holding the reference (e.g. "appointment").
	ChildTable string

	// RefColumn is the column in ChildTable that references the parent
	// (e.g. "doctor_id").
	RefColumn string

	// OnDelete is the policy applied when the parent row is deleted.
	OnDelete DeletePolicy
}

// Registry holds all declared relationships, indexed by parent table.
type Registry struct {
	relationships []Relationship
	byParent      map[string][]Relationship
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byParent: make(map[string][]Relationship),
	}
}

// Register adds a relationship to the registry.
func (r *Registry) Register(rel Relationship) {
	r.relationships = append(r.relationships, rel)
	r.byParent[rel.ParentTable] = append(r.byParent[rel.ParentTable], rel)
}

// ChildrenOf returns the relationships in which the given table is the parent.
func (r *Registry) ChildrenOf(parentTable string) []Relationship {
	return r.byParent[parentTable]
}

// HasChildren reports whether any relationship depends on the given table.
func (r *Registry) HasChildren(parentTable string) bool {
	return len(r.byParent[parentTable]) > 0
}

// AllRelationships returns every registered relationship.
func (r *Registry) AllRelationships() []Relationship {
	return r.relationships
}

// ClinicRegistry declares the full clinic schema dependency table.
func ClinicRegistry() *Registry {
	r := NewRegistry()

	r.Register(Relationship{ParentTable: "doctor", ChildTable: "doctor_specialty", RefColumn: "doctor_id", OnDelete: Cascade})
	r.Register(Relationship{ParentTable: "doctor", ChildTable: "appointment", RefColumn: "doctor_id", OnDelete: Restrict})
	r.Register(Relationship{ParentTable: "specialty", ChildTable: "doctor_specialty", RefColumn: "specialty_id", OnDelete: Restrict})
	r.Register(Relationship{ParentTable: "patient", ChildTable: "appointment", RefColumn: "patient_id", OnDelete: Restrict})
	r.Register(Relationship{ParentTable: "room", ChildTable: "appointment", RefColumn: "room_id", OnDelete: ClearReference})
	r.Register(Relationship{ParentTable: "appointment", ChildTable: "prescription", RefColumn: "appointment_id", OnDelete: Cascade})
	r.Register(Relationship{ParentTable: "appointment", ChildTable: "invoice", RefColumn: "appointment_id", OnDelete: Cascade})
	r.Register(Relationship{ParentTable: "prescription", ChildTable: "prescription_item", RefColumn: "prescription_id", OnDelete: Cascade})
	r.Register(Relationship{ParentTable: "medication", ChildTable: "prescription_item", RefColumn: "medication_id", OnDelete: Restrict})
	r.Register(Relationship{ParentTable: "invoice", ChildTable: "payment", RefColumn: "invoice_id", OnDelete: Cascade})

	return r
}
