package ead

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		unitid     UnitID
		wantRole   Role
		wantScheme string
	}{
		{
			name:     "ABS is canonical",
			unitid:   UnitID{Value: "12", Attrs: map[string]string{"type": "ABS"}},
			wantRole: RoleCanonical,
		},
		{
			name:     "handle",
			unitid:   UnitID{Value: "hdl:10648/x", Attrs: map[string]string{"type": "handle"}},
			wantRole: RoleHandle,
		},
		{
			name:       "untyped with identifier scheme",
			unitid:     UnitID{Value: "NL-HaNA_1.04.02_12", Attrs: map[string]string{"identifier": "guid"}},
			wantRole:   RoleNamed,
			wantScheme: "guid",
		},
		{
			name:     "typed handle with identifier still handle",
			unitid:   UnitID{Value: "hdl", Attrs: map[string]string{"type": "handle", "identifier": "x"}},
			wantRole: RoleHandle,
		},
		{
			name:     "blank is discarded",
			unitid:   UnitID{Value: "", Attrs: map[string]string{"type": "blank"}},
			wantRole: RoleDiscarded,
		},
		{
			name:     "obsolete is discarded",
			unitid:   UnitID{Value: "old 7", Attrs: map[string]string{"type": "obsolete"}},
			wantRole: RoleDiscarded,
		},
		{
			name:     "untyped is extra",
			unitid:   UnitID{Value: "12a"},
			wantRole: RoleExtra,
		},
	}

	c := DefaultClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.unitid)
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if got.Role != tt.wantRole {
				t.Errorf("Role = %v, want %v", got.Role, tt.wantRole)
			}
			if got.Value != tt.unitid.Value {
				t.Errorf("Value = %q, want %q", got.Value, tt.unitid.Value)
			}
			if got.Scheme != tt.wantScheme {
				t.Errorf("Scheme = %q, want %q", got.Scheme, tt.wantScheme)
			}
		})
	}
}

func TestClassifyUnknownType(t *testing.T) {
	c := DefaultClassifier()
	for _, typ := range []string{"inventory", "", "abs"} {
		t.Run(typ, func(t *testing.T) {
			_, err := c.Classify(UnitID{Value: "1", Attrs: map[string]string{"type": typ}})
			if !errors.Is(err, ErrUnknownIdentifierType) {
				t.Errorf("error = %v, want ErrUnknownIdentifierType", err)
			}
		})
	}
}

func TestClassifyCustomIgnored(t *testing.T) {
	c := DefaultClassifier()
	c.Ignored["old"] = true
	got, err := c.Classify(UnitID{Value: "x", Attrs: map[string]string{"type": "old"}})
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got.Role != RoleDiscarded {
		t.Errorf("Role = %v, want %v", got.Role, RoleDiscarded)
	}
}

func TestLooksLikeInventoryNumber(t *testing.T) {
	tests := map[string]bool{
		"12":    true,
		"12a":   true,
		"0001":  true,
		"a12":   false,
		"":      false,
		"n.v.t": false,
	}
	for input, want := range tests {
		if got := looksLikeInventoryNumber(input); got != want {
			t.Errorf("looksLikeInventoryNumber(%q) = %v, want %v", input, got, want)
		}
	}
}
