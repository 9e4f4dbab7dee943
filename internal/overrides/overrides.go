// Package overrides implements partner- and organization-level value
// overrides and the resolver that applies them with strict precedence:
// partner override, then organization default, then the variable's global
// default from the catalog.
//
// Reads are per-key and independent; there is intentionally no snapshot
// isolation across the variables of one evaluation. An admin changing an
// override concurrently with an in-flight evaluation is acceptable because
// no cross-variable consistency is required, and the evaluation's breakdown
// records exactly which values it saw.
package overrides

import (
	"context"

	"github.com/vinetrade/pricecore/internal/value"
)

// Store is the persistence capability for override records. At most one
// active override exists per (partner, variable) and per (org, variable)
// pair; setting replaces, deleting reverts resolution to the next level of
// precedence.
//
// Implementations must be safe for concurrent use: admin writes may race
// with resolver reads on independent keys.
type Store interface {
	// PartnerOverride returns the active override for a partner/variable
	// pair. The second return is false when none is set.
	PartnerOverride(ctx context.Context, partnerID, variableID string) (value.Value, bool, error)

	// OrgDefault returns the organization-level default for an
	// org/variable pair. The second return is false when none is set.
	OrgDefault(ctx context.Context, orgID, variableID string) (value.Value, bool, error)

	// SetPartnerOverride creates or replaces a partner override.
	SetPartnerOverride(ctx context.Context, partnerID, variableID string, v value.Value) error

	// DeletePartnerOverride removes a partner override. Deleting an
	// absent override is not an error.
	DeletePartnerOverride(ctx context.Context, partnerID, variableID string) error

	// SetOrgDefault creates or replaces an organization default.
	SetOrgDefault(ctx context.Context, orgID, variableID string, v value.Value) error

	// DeleteOrgDefault removes an organization default.
	DeleteOrgDefault(ctx context.Context, orgID, variableID string) error
}

// Directory is the read-only partner/organization lookup capability. The
// resolver uses it to map a session's partner to the organization whose
// defaults apply. It is provided by the surrounding application; this core
// never mutates directory data.
type Directory interface {
	// OrganizationOf returns the organization a partner belongs to. The
	// second return is false for unknown partners, which simply skips the
	// organization level of precedence.
	OrganizationOf(ctx context.Context, partnerID string) (string, bool, error)
}
