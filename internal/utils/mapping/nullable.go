package mapping

import "database/sql"

// ToNullString maps an empty string to SQL NULL.
func ToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// FromNullString maps SQL NULL to an empty string.
func FromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// StringPtrToModel flattens an optional domain value to a model string.
func StringPtrToModel(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ModelToStringPtr returns nil for an empty model string.
func ModelToStringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
