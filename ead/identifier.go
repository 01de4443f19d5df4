package ead

import (
	"fmt"
	"regexp"
)

// Role is the semantic role of a unitid within a file record.
type Role int

const (
	RoleUnknown Role = iota
	RoleCanonical
	RoleHandle
	RoleNamed
	RoleExtra
	RoleDiscarded
)

func (r Role) String() string {
	switch r {
	case RoleCanonical:
		return "canonical"
	case RoleHandle:
		return "handle"
	case RoleNamed:
		return "named"
	case RoleExtra:
		return "extra"
	case RoleDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Classification is the outcome of classifying one unitid.
type Classification struct {
	Role  Role
	Value string

	// Scheme is the identifier attribute of a RoleNamed unitid.
	Scheme string
}

// Classifier assigns unitids to roles from their type and identifier
// attributes.
type Classifier struct {
	CanonicalType string
	HandleType    string

	// Ignored lists type values that are dropped without error.
	Ignored map[string]bool
}

// DefaultClassifier returns the classifier for ABS/handle typed unitids.
func DefaultClassifier() Classifier {
	return Classifier{
		CanonicalType: "ABS",
		HandleType:    "handle",
		Ignored: map[string]bool{
			"handle":   true,
			"blank":    true,
			"obsolete": true,
		},
	}
}

// Classify assigns u to exactly one role; the first matching rule wins.
// A type attribute with no known role returns ErrUnknownIdentifierType so
// schema drift surfaces instead of being misfiled.
func (c Classifier) Classify(u UnitID) (Classification, error) {
	typ, typed := u.Type()
	scheme, named := u.Attrs["identifier"]

	switch {
	case typed && typ == c.CanonicalType:
		return Classification{Role: RoleCanonical, Value: u.Value}, nil
	case typed && typ == c.HandleType:
		return Classification{Role: RoleHandle, Value: u.Value}, nil
	case !typed && named:
		return Classification{Role: RoleNamed, Value: u.Value, Scheme: scheme}, nil
	case typed && c.Ignored[typ]:
		return Classification{Role: RoleDiscarded, Value: u.Value}, nil
	case !typed:
		return Classification{Role: RoleExtra, Value: u.Value}, nil
	default:
		return Classification{}, fmt.Errorf("%w %q for unitid %q", ErrUnknownIdentifierType, typ, u.Value)
	}
}

var inventoryNumberRegex = regexp.MustCompile(`^\d+`)

// looksLikeInventoryNumber reports whether v starts with a digit run.
func looksLikeInventoryNumber(v string) bool {
	return inventoryNumberRegex.MatchString(v)
}
