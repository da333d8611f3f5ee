package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/packpal/packpal-backend-go/internal/domain/inventory"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
)

type itemRepository struct {
	db *database.DB
}

func NewItemRepository(db *database.DB) inventory.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, item_id, name, quantity, unit_price, avg_daily_usage, lead_time_days, created_at, updated_at`

func scanItem(row pgx.Row) (inventory.Item, error) {
	var i inventory.Item
	err := row.Scan(
		&i.ID, &i.ItemID, &i.Name, &i.Quantity, &i.UnitPrice,
		&i.AvgDailyUsage, &i.LeadTimeDays, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

func (r *itemRepository) Create(ctx context.Context, item inventory.Item) (inventory.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO inventory_items (id, item_id, name, quantity, unit_price, avg_daily_usage, lead_time_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + itemColumns

	created, err := scanItem(q.QueryRow(ctx, query,
		uuid.NewString(), item.ItemID, item.Name, item.Quantity, item.UnitPrice,
		item.AvgDailyUsage, item.LeadTimeDays,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_inventory_item_id") {
			return inventory.Item{}, inventory.ErrItemIDExists
		}
		return inventory.Item{}, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return created, nil
}

func (r *itemRepository) GetByItemID(ctx context.Context, itemID string) (inventory.Item, error) {
	q := GetQuerier(ctx, r.db)

	i, err := scanItem(q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE item_id = $1`, itemID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Item{}, inventory.ErrItemNotFound
		}
		return inventory.Item{}, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return i, nil
}

func (r *itemRepository) List(ctx context.Context) ([]inventory.Item, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+itemColumns+` FROM inventory_items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	var items []inventory.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *itemRepository) Update(ctx context.Context, req inventory.UpdateItemRequest) (inventory.Item, error) {
	q := GetQuerier(ctx, r.db)

	var unitPrice *decimal.Decimal
	if req.UnitPrice != nil {
		d := decimal.NewFromFloat(req.UnitPrice.Float64())
		unitPrice = &d
	}

	query := `
		UPDATE inventory_items SET
			name = COALESCE($2, name),
			quantity = COALESCE($3, quantity),
			unit_price = COALESCE($4, unit_price),
			avg_daily_usage = COALESCE($5, avg_daily_usage),
			lead_time_days = COALESCE($6, lead_time_days),
			updated_at = NOW()
		WHERE item_id = $1
		RETURNING ` + itemColumns

	i, err := scanItem(q.QueryRow(ctx, query,
		req.ItemID, req.Name, floatArg(req.Quantity), unitPrice,
		floatArg(req.AvgDailyUsage), floatArg(req.LeadTimeDays),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Item{}, inventory.ErrItemNotFound
		}
		return inventory.Item{}, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return i, nil
}

func (r *itemRepository) Delete(ctx context.Context, itemID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrItemNotFound
	}
	return nil
}

type purchaseRepository struct {
	db *database.DB
}

func NewPurchaseRepository(db *database.DB) inventory.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Purchases always come back with the item name and current unit price joined
// in, since pricing lives on the item.
const purchaseColumns = `p.id, p.item_id, p.quantity, p.status, p.order_date, p.created_at, p.updated_at, i.name, i.unit_price`

func scanPurchase(row pgx.Row) (inventory.Purchase, error) {
	var p inventory.Purchase
	err := row.Scan(
		&p.ID, &p.ItemID, &p.Quantity, &p.Status, &p.OrderDate,
		&p.CreatedAt, &p.UpdatedAt, &p.ItemName, &p.UnitPrice,
	)
	return p, err
}

const purchaseSelect = `
	SELECT ` + purchaseColumns + `
	FROM purchases p
	LEFT JOIN inventory_items i ON i.item_id = p.item_id
`

func (r *purchaseRepository) Create(ctx context.Context, p inventory.Purchase) (inventory.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO purchases (id, item_id, quantity, status, order_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.ItemID, p.Quantity, p.Status, p.OrderDate,
	).Scan(&id)
	if err != nil {
		return inventory.Purchase{}, fmt.Errorf("failed to create purchase: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *purchaseRepository) GetByID(ctx context.Context, id string) (inventory.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPurchase(q.QueryRow(ctx, purchaseSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Purchase{}, inventory.ErrPurchaseNotFound
		}
		return inventory.Purchase{}, fmt.Errorf("failed to get purchase: %w", err)
	}
	return p, nil
}

func (r *purchaseRepository) List(ctx context.Context, status string) ([]inventory.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	query := purchaseSelect
	args := []interface{}{}
	if status != "" {
		query += ` WHERE p.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY p.order_date DESC, p.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []inventory.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (r *purchaseRepository) Approve(ctx context.Context, id string) (inventory.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE purchases SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING id`

	var updated string
	err := q.QueryRow(ctx, query, id, inventory.PurchaseApproved, inventory.PurchasePending).Scan(&updated)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish missing from already-approved.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return inventory.Purchase{}, getErr
			}
			return inventory.Purchase{}, inventory.ErrPurchaseNotPending
		}
		return inventory.Purchase{}, fmt.Errorf("failed to approve purchase: %w", err)
	}
	return r.GetByID(ctx, updated)
}

func (r *purchaseRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrPurchaseNotFound
	}
	return nil
}

func (r *purchaseRepository) SumPending(ctx context.Context) (decimal.Decimal, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(p.quantity * i.unit_price), 0), COUNT(*)
		FROM purchases p
		JOIN inventory_items i ON i.item_id = p.item_id
		WHERE p.status = $1`

	var total decimal.Decimal
	var count int
	if err := q.QueryRow(ctx, query, inventory.PurchasePending).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum pending purchases: %w", err)
	}
	return total, count, nil
}
