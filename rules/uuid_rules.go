package rules

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rulekit"
)

// isUUIDString pre-validates length and hyphen positions to avoid expensive
// parsing of obviously malformed input.
func isUUIDString(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	if len(v) != 36 {
		return false
	}
	if v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
		return false
	}
	_, err := uuid.Parse(v)
	return err == nil
}

// UUID fails when the value is not a canonically formatted UUID string.
func UUID() rulekit.Rule[string] {
	return rulekit.Rule[string]{
		Code:    "uuid",
		Message: "must be a valid UUID",
		Check:   isUUIDString,
	}
}

// NonNilUUID fails when the value is the nil UUID.
func NonNilUUID() rulekit.Rule[uuid.UUID] {
	return rulekit.Rule[uuid.UUID]{
		Code:    "uuid_not_nil",
		Message: "UUID cannot be nil",
		Check: func(v uuid.UUID) bool {
			return v != uuid.Nil
		},
	}
}

// UUIDVersion fails when the value is not a UUID of the given version.
// Versions outside 1 through 8 are a configuration error.
func UUIDVersion(version int) rulekit.Rule[string] {
	r := rulekit.Rule[string]{
		Code:    "uuid_version",
		Message: fmt.Sprintf("must be a UUID version %d", version),
		Meta:    map[string]any{"version": version},
		Check: func(v string) bool {
			if !isUUIDString(v) {
				return false
			}
			id, err := uuid.Parse(v)
			if err != nil {
				return false
			}
			return int(id.Version()) == version
		},
	}
	if version < 1 || version > 8 {
		return r.Invalid(fmt.Errorf("unsupported UUID version %d", version))
	}
	return r
}
