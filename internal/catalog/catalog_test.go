// internal/catalog/catalog_test.go
package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf/internal/apperr"
	"gameshelf/internal/catalog"
	"gameshelf/internal/memstore"
)

func TestCreateGame(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(memstore.New().Games())

	game, err := svc.CreateGame(ctx, "Catan", "Trade and build", "Strategy")
	require.NoError(t, err)
	assert.Equal(t, "Catan", game.Title)

	_, err = svc.CreateGame(ctx, "Catan", "Another copy", "Strategy")
	assert.True(t, apperr.IsConflict(err))
}

func TestCreateGameEmptyTitle(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(memstore.New().Games())

	_, err := svc.CreateGame(ctx, "  ", "No title", "Strategy")
	assert.True(t, apperr.IsBadRequest(err))
}

func TestGetGameNotFound(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(memstore.New().Games())

	_, err := svc.GetGameByTitle(ctx, "Azul")
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateGame(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(memstore.New().Games())

	_, err := svc.CreateGame(ctx, "Catan", "Trade and build", "Strategy")
	require.NoError(t, err)

	updated, err := svc.UpdateGame(ctx, "Catan", "Settle the island", "Family")
	require.NoError(t, err)
	assert.Equal(t, "Settle the island", updated.Description)
	assert.Equal(t, "Family", updated.Category)
}

func TestDeleteGame(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(memstore.New().Games())

	_, err := svc.CreateGame(ctx, "Catan", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGame(ctx, "Catan"))

	_, err = svc.GetGameByTitle(ctx, "Catan")
	assert.True(t, apperr.IsNotFound(err))
}
