package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"shopsmart-ai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ProductRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProductRepository(db *pgxpool.Pool, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("products").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepository) List(ctx context.Context, limit uint64) ([]models.Product, error) {
	query := squirrel.Select("id", "name", "price").
		From("products").
		OrderBy("id").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// PriceChange records one applied price update for logging.
type PriceChange struct {
	ID       string
	Name     string
	OldPrice float64
	NewPrice float64
}

// UpdatePrices applies the given id->price map inside a single transaction.
// Identifiers with no matching row are skipped and reported in the second
// return value; the commit is all-or-nothing for the rows that matched.
func (r *ProductRepository) UpdatePrices(ctx context.Context, updates map[string]float64) ([]PriceChange, []string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Deterministic processing order for stable logs.
	ids := make([]string, 0, len(updates))
	for id := range updates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var changes []PriceChange
	var notFound []string

	for _, id := range ids {
		newPrice := updates[id]

		selectSQL, selectArgs, err := squirrel.Select("id", "name", "price").
			From("products").
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, nil, err
		}

		product, err := scanProduct(tx.QueryRow(ctx, selectSQL, selectArgs...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				notFound = append(notFound, id)
				continue
			}
			return nil, nil, fmt.Errorf("look up product %s: %w", id, err)
		}

		updateSQL, updateArgs, err := squirrel.Update("products").
			Set("price", newPrice).
			Where(squirrel.Eq{"id": product.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, nil, err
		}

		if _, err := tx.Exec(ctx, updateSQL, updateArgs...); err != nil {
			return nil, nil, fmt.Errorf("update product %s: %w", id, err)
		}

		changes = append(changes, PriceChange{
			ID:       product.ID,
			Name:     product.Name,
			OldPrice: product.Price,
			NewPrice: newPrice,
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit price updates: %w", err)
	}

	r.logger.Info("Price updates committed",
		zap.Int("updated", len(changes)),
		zap.Int("not_found", len(notFound)),
	)

	return changes, notFound, nil
}
