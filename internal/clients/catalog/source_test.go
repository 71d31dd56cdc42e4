package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-alchemy/internal/clients/catalog"
	catalogmock "github.com/KirkDiggler/rpg-alchemy/internal/clients/catalog/mock"
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	broken := catalogmock.NewMockSource(ctrl)
	broken.EXPECT().Name().Return("broken").AnyTimes()
	broken.EXPECT().Get(ctx, "antidote").Return(nil, errors.Unavailable("catalog offline"))

	static := catalog.NewStatic("equipment", &alchemy.CatalogRecord{
		ID:     "antidote",
		Name:   "Antidote (Lesser)",
		Traits: []string{alchemy.TraitAlchemical},
	})

	registry := catalog.NewRegistry(broken, static)
	assert.Equal(t, []string{"broken", "equipment"}, registry.Names())

	source, ok := registry.Resolve("equipment")
	require.True(t, ok)
	assert.Equal(t, "equipment", source.Name())

	_, ok = registry.Resolve("spells")
	assert.False(t, ok)

	record, err := registry.Lookup(ctx, "antidote")
	require.NoError(t, err)
	assert.Equal(t, "equipment", record.Catalog)

	broken.EXPECT().Get(ctx, "missing").Return(nil, errors.NotFound("missing"))
	_, err = registry.Lookup(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestStaticSourceCopies(t *testing.T) {
	ctx := context.Background()
	static := catalog.NewStatic("equipment", &alchemy.CatalogRecord{ID: "a", Name: "A"})

	records, err := static.List(ctx)
	require.NoError(t, err)
	records[0].Name = "changed"

	record, err := static.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", record.Name)
}
