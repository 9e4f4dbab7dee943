package evalorder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetrade/pricecore/internal/catalog"
	"github.com/vinetrade/pricecore/internal/value"
)

func version(t *testing.T, defs []*catalog.VariableDefinition) *catalog.Version {
	t.Helper()
	v, err := catalog.NewVersion("test", "EUR", "total", defs)
	require.NoError(t, err)
	return v
}

func computed(id string, deps ...string) *catalog.VariableDefinition {
	return &catalog.VariableDefinition{
		ID:         id,
		Type:       value.TypeDecimal,
		Resolution: catalog.ResolutionComputed,
		DependsOn:  deps,
	}
}

func input(id string) *catalog.VariableDefinition {
	return &catalog.VariableDefinition{ID: id, Type: value.TypeInteger, Resolution: catalog.ResolutionInput}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("dependencies come first", func(t *testing.T) {
		v := version(t, []*catalog.VariableDefinition{
			computed("total", "subtotal", "duty"),
			computed("duty", "subtotal"),
			computed("subtotal", "qty", "price"),
			input("qty"),
			input("price"),
		})

		order, err := Build(ctx, v)
		require.NoError(t, err)
		assert.Equal(t, "test", order.Version())

		pos := make(map[string]int, len(order.IDs()))
		for i, id := range order.IDs() {
			pos[id] = i
		}
		for _, id := range v.IDs() {
			def, _ := v.Variable(id)
			for _, dep := range def.DependsOn {
				assert.Less(t, pos[dep], pos[id], "%s must be ordered before %s", dep, id)
			}
		}
	})

	t.Run("ties break by ascending id", func(t *testing.T) {
		v := version(t, []*catalog.VariableDefinition{
			input("zulu"),
			input("alpha"),
			input("mike"),
			computed("total", "alpha"),
		})

		order, err := Build(ctx, v)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "mike", "zulu", "total"}, order.IDs())
	})

	t.Run("order is reproducible", func(t *testing.T) {
		v := version(t, []*catalog.VariableDefinition{
			input("a"), input("b"), input("c"), input("d"),
			computed("x", "a", "b"),
			computed("y", "c", "d"),
			computed("total", "x", "y"),
		})

		first, err := Build(ctx, v)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := Build(ctx, v)
			require.NoError(t, err)
			assert.Equal(t, first.IDs(), again.IDs())
		}
	})

	t.Run("cycle is reported with its path", func(t *testing.T) {
		v := version(t, []*catalog.VariableDefinition{
			computed("a", "b"),
			computed("b", "a"),
			computed("total", "a"),
		})

		_, err := Build(ctx, v)
		var cycleErr *catalog.CycleError
		require.ErrorAs(t, err, &cycleErr)
		assert.Equal(t, []string{"a", "b", "a"}, cycleErr.Path)
	})
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	v := version(t, []*catalog.VariableDefinition{
		input("qty"),
		computed("total", "qty"),
	})

	c := NewCache()
	first, err := c.Get(ctx, v)
	require.NoError(t, err)
	second, err := c.Get(ctx, v)
	require.NoError(t, err)
	assert.Same(t, first, second, "order is built once per version")
}
