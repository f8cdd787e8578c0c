package query

import "strings"

// SortField is a single ORDER BY term.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated list such as "-CreatedAt,Name".
// A leading "-" selects descending order. Empty entries are skipped.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
			continue
		}
		fields = append(fields, SortField{Field: part})
	}
	return fields
}
