package repos

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"shopmart/internal/domain"
)

const productCols = `id, name, price, original_price, discount, rating, reviews, image, category, description, stock, sold`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a search term only ever
// matches itself.
func escapeLike(s string) string { return likeEscaper.Replace(s) }

// List filters and sorts the catalog. Category is a case-insensitive exact
// match ("all" or empty means no filter), search a case-insensitive substring
// match over name or description. Sorts are stable over insertion order via
// the seq tiebreak.
func (r *ProductRepo) List(category, search, sort string) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if category != "" && !strings.EqualFold(category, "all") {
		where += ` AND LOWER(category) = ?`
		args = append(args, strings.ToLower(category))
	}
	if search != "" {
		q := "%" + escapeLike(strings.ToLower(search)) + "%"
		where += ` AND (LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`
		args = append(args, q, q)
	}

	order := `seq ASC`
	switch sort {
	case "price-low":
		order = `price ASC, seq ASC`
	case "price-high":
		order = `price DESC, seq ASC`
	case "rating":
		order = `rating DESC, seq ASC`
	}

	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE `+where+` ORDER BY `+order, args...)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// Create inserts a new product and assigns it the next sequential id.
func (r *ProductRepo) Create(p domain.Product) (domain.Product, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Product{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO products(id, name, price, original_price, discount, rating, reviews, image, category, description, stock, sold)
	  VALUES('', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Price, p.OriginalPrice, p.Discount, p.Rating, p.Reviews, p.Image, p.Category, p.Description, p.Stock, p.Sold)
	if err != nil {
		return domain.Product{}, err
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	if _, err := tx.Exec(`UPDATE products SET id = CAST(seq AS TEXT) WHERE seq = ?`, seq); err != nil {
		return domain.Product{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Product{}, err
	}

	p.ID = strconv.FormatInt(seq, 10)
	return p, nil
}

// Update writes the full record back; callers merge fields beforehand.
func (r *ProductRepo) Update(p domain.Product) error {
	res, err := r.db.Exec(`
	  UPDATE products SET
	    name = ?, price = ?, original_price = ?, discount = ?, rating = ?,
	    reviews = ?, image = ?, category = ?, description = ?, stock = ?, sold = ?
	  WHERE id = ?
	`, p.Name, p.Price, p.OriginalPrice, p.Discount, p.Rating, p.Reviews, p.Image, p.Category, p.Description, p.Stock, p.Sold, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}

// Categories returns the distinct category labels in first-appearance order.
func (r *ProductRepo) Categories() ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `SELECT category FROM products GROUP BY category ORDER BY MIN(seq)`)
	return out, err
}
