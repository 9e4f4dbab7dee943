package value

import "fmt"

// SourceKind classifies where a resolved value came from, for the audit
// trail attached to every breakdown line.
type SourceKind int

const (
	// SourceInput means the value was supplied by the session owner.
	SourceInput SourceKind = iota
	// SourcePartnerOverride means a partner-specific override applied.
	SourcePartnerOverride
	// SourceOrgDefault means an organization-level default applied.
	SourceOrgDefault
	// SourceGlobalDefault means the catalog's global default applied.
	SourceGlobalDefault
	// SourceComputed means the value was derived from its dependencies.
	SourceComputed
)

// Source records the provenance of one resolved value. PartnerID is set
// only for SourcePartnerOverride.
type Source struct {
	Kind      SourceKind
	PartnerID string
}

// InputSource tags a session-supplied value.
func InputSource() Source { return Source{Kind: SourceInput} }

// OverrideSource tags a value that came from a partner override.
func OverrideSource(partnerID string) Source {
	return Source{Kind: SourcePartnerOverride, PartnerID: partnerID}
}

// OrgDefaultSource tags a value that came from an organization default.
func OrgDefaultSource() Source { return Source{Kind: SourceOrgDefault} }

// GlobalDefaultSource tags a value that came from the catalog default.
func GlobalDefaultSource() Source { return Source{Kind: SourceGlobalDefault} }

// ComputedSource tags a derived value.
func ComputedSource() Source { return Source{Kind: SourceComputed} }

// String renders the canonical audit form: "input", "override:<partnerId>",
// "default:org", "default:global" or "computed".
func (s Source) String() string {
	switch s.Kind {
	case SourceInput:
		return "input"
	case SourcePartnerOverride:
		return "override:" + s.PartnerID
	case SourceOrgDefault:
		return "default:org"
	case SourceGlobalDefault:
		return "default:global"
	case SourceComputed:
		return "computed"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(s.Kind))
	}
}
