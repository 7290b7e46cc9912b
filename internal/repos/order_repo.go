package repos

import (
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"shopmart/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type orderRow struct {
	Seq       int64   `db:"seq"`
	ID        string  `db:"id"`
	Total     float64 `db:"total"`
	Status    string  `db:"status"`
	CreatedAt string  `db:"created_at"`
	domain.CustomerInfo
}

type orderItemRow struct {
	OrderSeq int64 `db:"order_seq"`
	Position int   `db:"position"`
	domain.OrderItem
}

// Create appends a new order with the submitted items and total. The id is
// sequential per process, starting at "1".
func (r *OrderRepo) Create(items []domain.OrderItem, total float64, info domain.CustomerInfo) (domain.Order, error) {
	now := time.Now().UTC()

	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO orders(id, total, status, first_name, last_name, email, phone, address, city, state, zip_code, country, created_at)
	  VALUES('', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, total, domain.OrderStatusPending, info.FirstName, info.LastName, info.Email, info.Phone,
		info.Address, info.City, info.State, info.ZipCode, info.Country, now.Format(time.RFC3339Nano))
	if err != nil {
		return domain.Order{}, err
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return domain.Order{}, err
	}
	if _, err := tx.Exec(`UPDATE orders SET id = CAST(seq AS TEXT) WHERE seq = ?`, seq); err != nil {
		return domain.Order{}, err
	}

	for i, it := range items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_seq, position, id, name, price, original_price, discount, rating, reviews, image, category, description, stock, sold, quantity)
		  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, seq, i, it.ID, it.Name, it.Price, it.OriginalPrice, it.Discount, it.Rating, it.Reviews,
			it.Image, it.Category, it.Description, it.Stock, it.Sold, it.Quantity); err != nil {
			return domain.Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, err
	}

	if items == nil {
		items = []domain.OrderItem{}
	}
	return domain.Order{
		ID:           strconv.FormatInt(seq, 10),
		Items:        items,
		Total:        total,
		CustomerInfo: info,
		Status:       domain.OrderStatusPending,
		CreatedAt:    now,
	}, nil
}

// List returns every order, oldest first, with items attached.
func (r *OrderRepo) List() ([]domain.Order, error) {
	var rows []orderRow
	if err := r.db.Select(&rows, `
	  SELECT seq, id, total, status, first_name, last_name, email, phone, address, city, state, zip_code, country, created_at
	  FROM orders ORDER BY seq
	`); err != nil {
		return nil, err
	}

	var itemRows []orderItemRow
	if err := r.db.Select(&itemRows, `
	  SELECT order_seq, position, id, name, price, original_price, discount, rating, reviews, image, category, description, stock, sold, quantity
	  FROM order_items ORDER BY order_seq, position
	`); err != nil {
		return nil, err
	}

	itemsBySeq := make(map[int64][]domain.OrderItem)
	for _, ir := range itemRows {
		itemsBySeq[ir.OrderSeq] = append(itemsBySeq[ir.OrderSeq], ir.OrderItem)
	}

	out := []domain.Order{}
	for _, row := range rows {
		created, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
		items := itemsBySeq[row.Seq]
		if items == nil {
			items = []domain.OrderItem{}
		}
		out = append(out, domain.Order{
			ID:           row.ID,
			Items:        items,
			Total:        row.Total,
			CustomerInfo: row.CustomerInfo,
			Status:       row.Status,
			CreatedAt:    created,
		})
	}
	return out, nil
}

func (r *OrderRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders`)
	return n, err
}
