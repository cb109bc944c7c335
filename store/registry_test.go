package store

import "testing"

func TestDeletePolicyString(t *testing.T) {
	tests := []struct {
		policy DeletePolicy
		want   string
	}{
		{Cascade, "cascade"},
		{Restrict, "restrict"},
		{ClearReference, "clear-reference"},
		{DeletePolicy(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.want {
			t.Errorf("DeletePolicy(%d).String() = %q, want %q", tt.policy, got, tt.want)
		}
	}
}

func TestRegistryIndexesByParent(t *testing.T) {
	r := NewRegistry()
	r.Register(Relationship{ParentTable: "a", ChildTable: "b", RefColumn: "a_id", OnDelete: Cascade})
	r.Register(Relationship{ParentTable: "a", ChildTable: "c", RefColumn: "a_id", OnDelete: Restrict})

	if got := len(r.ChildrenOf("a")); got != 2 {
		t.Fatalf("ChildrenOf(a) returned %d relationships, want 2", got)
	}
	if r.HasChildren("b") {
		t.Error("HasChildren(b) = true, want false")
	}
	if got := len(r.AllRelationships()); got != 2 {
		t.Fatalf("AllRelationships returned %d, want 2", got)
	}
}

func TestClinicRegistryDeclaresFullDependencyTable(t *testing.T) {
	r := ClinicRegistry()

	if got := len(r.AllRelationships()); got != 10 {
		t.Fatalf("expected 10 relationships, got %d", got)
	}

	tests := []struct {
		parent string
		child  string
		column string
		policy DeletePolicy
	}{
		{"doctor", "doctor_specialty", "doctor_id", Cascade},
		{"doctor", "appointment", "doctor_id", Restrict},
		{"specialty", "doctor_specialty", "specialty_id", Restrict},
		{"patient", "appointment", "patient_id", Restrict},
		{"room", "appointment", "room_id", ClearReference},
		{"appointment", "prescription", "appointment_id", Cascade},
		{"appointment", "invoice", "appointment_id", Cascade},
		{"prescription", "prescription_item", "prescription_id", Cascade},
		{"medication", "prescription_item", "medication_id", Restrict},
		{"invoice", "payment", "invoice_id", Cascade},
	}

	for _, tt := range tests {
		found := false
		for _, rel := range r.ChildrenOf(tt.parent) {
			if rel.ChildTable == tt.child && rel.RefColumn == tt.column {
				found = true
				if rel.OnDelete != tt.policy {
					t.Errorf("%s -> %s: policy = %s, want %s", tt.parent, tt.child, rel.OnDelete, tt.policy)
				}
			}
		}
		if !found {
			t.Errorf("missing relationship %s -> %s via %s", tt.parent, tt.child, tt.column)
		}
	}

	// Leaf tables never appear as parents.
	for _, leaf := range []string{"doctor_specialty", "prescription_item", "payment"} {
		if r.HasChildren(leaf) {
			t.Errorf("%s must not have dependents", leaf)
		}
	}
}
