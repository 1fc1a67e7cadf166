package catalog

import (
	"context"
	"database/sql"

	"github.com/gardenlawn/shopfeed/internal/domain"
)

type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

const productColumns = `
entity_id, sku, name, meta_description, short_description,
final_price, cost, manufacturer, gtin, url_key, image,
status, visibility, in_stock`

func (s *MySQLStore) ListFeedEligibleProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+productColumns+`
FROM catalog_products
WHERE status = ?
  AND visibility IN (?, ?, ?)
  AND final_price > 0
ORDER BY entity_id
`, domain.StatusEnabled, domain.VisibilityInCatalog, domain.VisibilityInSearch, domain.VisibilityBoth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *MySQLStore) GetProduct(ctx context.Context, sku string) (domain.Product, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT `+productColumns+`
FROM catalog_products
WHERE sku = ?
`, sku)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, err
	}
	return p, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p         domain.Product
		metaDesc  sql.NullString
		shortDesc sql.NullString
		cost      sql.NullFloat64
		brand     sql.NullString
		gtin      sql.NullString
		image     sql.NullString
		inStock   sql.NullBool // TINYINT(1) does not scan into a bare bool
	)

	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &metaDesc, &shortDesc,
		&p.FinalPrice, &cost, &brand, &gtin, &p.URLKey, &image,
		&p.Status, &p.Visibility, &inStock,
	)
	if err != nil {
		return domain.Product{}, err
	}
	p.InStock = inStock.Valid && inStock.Bool

	if metaDesc.Valid {
		p.MetaDescription = &metaDesc.String
	}
	if shortDesc.Valid {
		p.ShortDescription = &shortDesc.String
	}
	if cost.Valid {
		p.Cost = &cost.Float64
	}
	if brand.Valid {
		p.Manufacturer = &brand.String
	}
	if gtin.Valid {
		p.GTIN = &gtin.String
	}
	if image.Valid {
		p.Image = &image.String
	}

	return p, nil
}
