// Package sortmap translates caller-supplied orderBy strings into backing
// column clauses through per-entity whitelists built at startup. Anything
// not whitelisted fails the whole request; field names never reach query
// construction unchecked.
package sortmap

import (
	"fmt"
	"strings"

	"lexvault/internal/domain"
)

// Clause is one resolved ordering term.
type Clause struct {
	Column string
	Desc   bool
}

// SQL renders the clause as an ORDER BY fragment. Column comes from the
// whitelist, never from caller input.
func (c Clause) SQL() string {
	if c.Desc {
		return c.Column + " DESC"
	}
	return c.Column + " ASC"
}

// FieldMap is a whitelist from external field name (lower-cased) to one or
// more backing columns. Read-only after construction, safe for concurrent use.
type FieldMap map[string][]string

// New builds a FieldMap, normalizing keys to lower case.
func New(fields map[string][]string) FieldMap {
	m := make(FieldMap, len(fields))
	for name, cols := range fields {
		m[strings.ToLower(name)] = cols
	}
	return m
}

// Parse resolves a comma-separated "field [desc]" string against the
// whitelist. An empty orderBy yields the defaults. Any unknown field or
// malformed term rejects the entire request.
func (m FieldMap) Parse(orderBy string, defaults ...Clause) ([]Clause, error) {
	if strings.TrimSpace(orderBy) == "" {
		return defaults, nil
	}

	var clauses []Clause
	for _, term := range strings.Split(orderBy, ",") {
		parts := strings.Fields(term)
		if len(parts) == 0 || len(parts) > 2 {
			return nil, fmt.Errorf("%w: malformed sort term %q", domain.ErrInvalidInput, strings.TrimSpace(term))
		}

		desc := false
		if len(parts) == 2 {
			switch strings.ToLower(parts[1]) {
			case "desc":
				desc = true
			case "asc":
			default:
				return nil, fmt.Errorf("%w: unknown sort direction %q", domain.ErrInvalidInput, parts[1])
			}
		}

		cols, ok := m[strings.ToLower(parts[0])]
		if !ok {
			return nil, fmt.Errorf("%w: sort field %q is not sortable", domain.ErrInvalidInput, parts[0])
		}
		for _, col := range cols {
			clauses = append(clauses, Clause{Column: col, Desc: desc})
		}
	}
	return clauses, nil
}

// OrderBy renders clauses as ORDER BY fragments for query builders.
func OrderBy(clauses []Clause) []string {
	out := make([]string, len(clauses))
	for i, c := range clauses {
		out[i] = c.SQL()
	}
	return out
}

// Per-entity whitelists and default orders. Built once at package init,
// never mutated afterwards.
var (
	MatterFields = New(map[string][]string{
		"description": {"description"},
		"isArchived":  {"is_archived"},
		"createdAt":   {"created_at"},
		"updatedAt":   {"updated_at"},
	})

	DocumentFields = New(map[string][]string{
		"fileName":  {"file_name", "extension"},
		"extension": {"extension"},
		"fileSize":  {"file_size"},
		"mimeType":  {"mime_type"},
		"createdAt": {"created_at"},
		"updatedAt": {"updated_at"},
	})

	RevisionFields = New(map[string][]string{
		"revisionNumber": {"revision_number"},
		"createdAt":      {"created_at"},
	})

	ActivityFields = New(map[string][]string{
		"action":    {"action"},
		"userId":    {"user_id"},
		"createdAt": {"created_at"},
	})

	TransferActivityFields = New(map[string][]string{
		"action":    {"action"},
		"direction": {"direction"},
		"userId":    {"user_id"},
		"createdAt": {"created_at"},
	})

	MatterDefaultOrder   = []Clause{{Column: "created_at"}}
	DocumentDefaultOrder = []Clause{{Column: "file_name"}}
	RevisionDefaultOrder = []Clause{{Column: "revision_number"}}
	ActivityDefaultOrder = []Clause{{Column: "created_at", Desc: true}}
)
