package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// CatalogPath is a catalog manifest file or a directory of them.
	CatalogPath string
	// ActiveVersion selects the catalog version new sessions pin. Empty
	// means the highest version name found.
	ActiveVersion string

	LogFormat string
	LogLevel  string

	// AdminIDs are the caller ids granted the admin capability.
	AdminIDs []string
	// PartnerOrgs maps partner ids to their organization, backing the
	// directory capability.
	PartnerOrgs map[string]string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CatalogPath == "" {
		return nil, errors.New("CatalogPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
