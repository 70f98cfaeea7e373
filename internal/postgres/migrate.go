package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id                 BIGSERIAL PRIMARY KEY,
	customer_id        BIGINT           NOT NULL,
	shipping_address   TEXT             NOT NULL,
	pincode            VARCHAR(6)       NOT NULL,
	consignment_weight DOUBLE PRECISION NOT NULL,
	shipping_cost      DOUBLE PRECISION NOT NULL,
	status             VARCHAR(50)      NOT NULL DEFAULT 'Pending',
	created_at         TIMESTAMPTZ      NOT NULL DEFAULT now(),
	updated_at         TIMESTAMPTZ      NOT NULL DEFAULT now()
);`

// Migrate initializes the schema. Runs once at startup, before the server
// accepts traffic.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, ordersSchema); err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}
	return nil
}
