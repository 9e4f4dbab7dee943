package catalog

import (
	"fmt"
	"sort"
)

// Version is one immutable catalog version. Sessions pin a version by name
// at creation and keep it for life, so a Version must never change after
// it has been handed out.
type Version struct {
	// Name identifies the version, e.g. "v1". Unique within a registry.
	Name string
	// Currency is the ISO currency code all currency values are priced in.
	Currency string
	// TotalVariable names the computed variable whose value becomes the
	// breakdown's total price.
	TotalVariable string

	vars map[string]*VariableDefinition
	ids  []string
}

// NewVersion assembles a version from a definition list. Duplicate ids are
// rejected here; deeper structural checks belong to Validate.
func NewVersion(name, currency, totalVariable string, defs []*VariableDefinition) (*Version, error) {
	v := &Version{
		Name:          name,
		Currency:      currency,
		TotalVariable: totalVariable,
		vars:          make(map[string]*VariableDefinition, len(defs)),
	}
	for _, def := range defs {
		if _, exists := v.vars[def.ID]; exists {
			return nil, &DefinitionError{Version: name, VariableID: def.ID, Reason: "duplicate variable id"}
		}
		v.vars[def.ID] = def
		v.ids = append(v.ids, def.ID)
	}
	sort.Strings(v.ids)
	return v, nil
}

// Variable looks up a definition by id.
func (v *Version) Variable(id string) (*VariableDefinition, bool) {
	def, ok := v.vars[id]
	return def, ok
}

// IDs returns all variable ids in ascending order. The slice is shared;
// callers must not modify it.
func (v *Version) IDs() []string {
	return v.ids
}

// Len returns the number of variables in the version.
func (v *Version) Len() int {
	return len(v.vars)
}

// String implements fmt.Stringer for log lines.
func (v *Version) String() string {
	return fmt.Sprintf("catalog %s (%d variables, %s)", v.Name, len(v.vars), v.Currency)
}
