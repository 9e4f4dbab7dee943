// Package hclcat loads catalog versions from HCL manifest files.
//
// A manifest file defines exactly one catalog version: a `catalog` block
// naming the version, its currency and its total variable, followed by one
// `variable` block per catalog variable. Manifests are developer-authored
// and shipped with the deployment; they are configuration, not user input.
package hclcat

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// catalogBlock is the HCL shape of the `catalog` header block.
type catalogBlock struct {
	Name     string `hcl:"name,label"`
	Currency string `hcl:"currency,optional"`
	Total    string `hcl:"total,optional"`
}

// variableBlock is the HCL shape of one `variable` block.
type variableBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Resolution  string         `hcl:"resolution"`
	DependsOn   []string       `hcl:"depends_on,optional"`
	Default     *cty.Value     `hcl:"default,optional"`
	Values      []string       `hcl:"values,optional"`
	Description string         `hcl:"description,optional"`
}

// fileSchema is the top-level structure of a catalog manifest file.
type fileSchema struct {
	Catalog   *catalogBlock    `hcl:"catalog,block"`
	Variables []*variableBlock `hcl:"variable,block"`
}

// Fallbacks for optional catalog header attributes.
const (
	defaultCurrency      = "EUR"
	defaultTotalVariable = "total"
)
