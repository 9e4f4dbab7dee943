package hclcat

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/value"
)

// translateFile converts a decoded manifest into a catalog version.
func translateFile(ctx context.Context, filename string, f *fileSchema) (*catalog.Version, error) {
	if f.Catalog == nil {
		return nil, fmt.Errorf("%s: missing catalog block", filename)
	}

	currency := f.Catalog.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	total := f.Catalog.Total
	if total == "" {
		total = defaultTotalVariable
	}

	defs := make([]*catalog.VariableDefinition, 0, len(f.Variables))
	for _, vb := range f.Variables {
		def, err := translateVariable(ctx, vb)
		if err != nil {
			return nil, fmt.Errorf("%s: variable %q: %w", filename, vb.Name, err)
		}
		defs = append(defs, def)
	}

	v, err := catalog.NewVersion(f.Catalog.Name, currency, total, defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return v, nil
}

// translateVariable converts one variable block into a definition.
func translateVariable(ctx context.Context, vb *variableBlock) (*catalog.VariableDefinition, error) {
	typ, err := typeExprToValueType(ctx, vb.Type)
	if err != nil {
		return nil, err
	}

	res, err := parseResolution(vb.Resolution)
	if err != nil {
		return nil, err
	}

	def := &catalog.VariableDefinition{
		ID:          vb.Name,
		Type:        typ,
		Resolution:  res,
		DependsOn:   vb.DependsOn,
		EnumValues:  vb.Values,
		Description: vb.Description,
	}

	if vb.Default != nil && !vb.Default.IsNull() {
		dv, err := ctyToValue(*vb.Default, typ)
		if err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		def.Default = &dv
	}

	return def, nil
}

// parseResolution maps the manifest keyword onto the resolution enum.
func parseResolution(s string) (catalog.Resolution, error) {
	switch s {
	case "input":
		return catalog.ResolutionInput, nil
	case "computed":
		return catalog.ResolutionComputed, nil
	case "overridable":
		return catalog.ResolutionOverridable, nil
	default:
		return 0, fmt.Errorf("unknown resolution %q (want input, computed or overridable)", s)
	}
}

// typeExprToValueType converts an HCL type expression into its value.Type
// equivalent. Type keywords are written bare in manifests (`type = currency`),
// which HCL parses as a scope traversal.
func typeExprToValueType(ctx context.Context, expr hcl.Expression) (value.Type, error) {
	traversal, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok {
		return 0, fmt.Errorf("unsupported expression for type definition: %T", expr)
	}
	if len(traversal.Traversal) != 1 {
		return 0, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
	}

	switch name := traversal.Traversal.RootName(); name {
	case "integer":
		return value.TypeInteger, nil
	case "decimal":
		return value.TypeDecimal, nil
	case "percentage":
		return value.TypePercentage, nil
	case "currency":
		return value.TypeCurrency, nil
	case "enum":
		return value.TypeEnum, nil
	case "bool":
		return value.TypeBool, nil
	default:
		return 0, fmt.Errorf("unknown type keyword %q", name)
	}
}

// ctyToValue converts a manifest default into the domain value type.
// Numbers go through their exact decimal string form, never a float64, so
// manifest constants like 100.00 survive untouched.
func ctyToValue(cv cty.Value, typ value.Type) (value.Value, error) {
	switch typ {
	case value.TypeEnum:
		if cv.Type() != cty.String {
			return value.Value{}, fmt.Errorf("enum default must be a string, got %s", cv.Type().FriendlyName())
		}
		return value.NewEnum(cv.AsString()), nil

	case value.TypeBool:
		if cv.Type() != cty.Bool {
			return value.Value{}, fmt.Errorf("bool default must be a bool, got %s", cv.Type().FriendlyName())
		}
		return value.NewBool(cv.True()), nil

	default:
		if cv.Type() != cty.Number {
			return value.Value{}, fmt.Errorf("%s default must be a number, got %s", typ, cv.Type().FriendlyName())
		}
		d, err := decimal.NewFromString(cv.AsBigFloat().Text('f', -1))
		if err != nil {
			return value.Value{}, fmt.Errorf("parsing number: %w", err)
		}
		return value.NewNumeric(typ, d)
	}
}
