package segment

import (
	"context"
	"database/sql"
)

type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) GetSegment(ctx context.Context, productID uint64) (string, bool, error) {
	var label string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT segment_label FROM product_segments WHERE product_id = ?`,
		productID,
	).Scan(&label)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return label, true, nil
}

func (s *MySQLStore) UpsertSegment(ctx context.Context, productID uint64, label string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO product_segments (product_id, segment_label)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE segment_label = VALUES(segment_label)
`, productID, label)

	return err
}
