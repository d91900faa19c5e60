package repository

import (
	"testing"

	"shopsmart-ai/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRow struct {
	product models.Product
	err     error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.product.ID
	*dest[1].(*string) = r.product.Name
	*dest[2].(*float64) = r.product.Price
	return nil
}

func TestScanProduct(t *testing.T) {
	row := stubRow{product: models.Product{ID: "1021", Name: "Jasmine Rice 5kg", Price: 790.0}}

	got, err := scanProduct(row)
	require.NoError(t, err)
	assert.Equal(t, "1021", got.ID)
	assert.Equal(t, "Jasmine Rice 5kg", got.Name)
	assert.Equal(t, 790.0, got.Price)
}

func TestScanProductMissingRow(t *testing.T) {
	_, err := scanProduct(stubRow{err: pgx.ErrNoRows})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
