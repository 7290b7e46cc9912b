package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// Every pooled connection would otherwise get its own empty
		// in-memory database. A single connection also serializes all
		// store access.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Catalog store. seq drives both insertion order and id assignment:
-- AUTOINCREMENT never reuses values, so ids stay monotonic across deletes.
CREATE TABLE IF NOT EXISTS products(
  seq            INTEGER PRIMARY KEY AUTOINCREMENT,
  id             TEXT NOT NULL UNIQUE,
  name           TEXT NOT NULL,
  price          REAL NOT NULL CHECK (price >= 0),
  original_price REAL NOT NULL DEFAULT 0,
  discount       INTEGER NOT NULL DEFAULT 0,
  rating         REAL NOT NULL DEFAULT 0,
  reviews        INTEGER NOT NULL DEFAULT 0,
  image          TEXT NOT NULL DEFAULT '',
  category       TEXT NOT NULL DEFAULT 'General',
  description    TEXT NOT NULL DEFAULT '',
  stock          INTEGER NOT NULL DEFAULT 0,
  sold           INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(LOWER(category));
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Order store. Orders are append-only; there is no status transition.
CREATE TABLE IF NOT EXISTS orders(
  seq        INTEGER PRIMARY KEY AUTOINCREMENT,
  id         TEXT NOT NULL UNIQUE,
  total      REAL NOT NULL,
  status     TEXT NOT NULL DEFAULT 'pending',
  first_name TEXT NOT NULL DEFAULT '',
  last_name  TEXT NOT NULL DEFAULT '',
  email      TEXT NOT NULL DEFAULT '',
  phone      TEXT NOT NULL DEFAULT '',
  address    TEXT NOT NULL DEFAULT '',
  city       TEXT NOT NULL DEFAULT '',
  state      TEXT NOT NULL DEFAULT '',
  zip_code   TEXT NOT NULL DEFAULT '',
  country    TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);

-- Line items carry a full product snapshot taken at submission time.
CREATE TABLE IF NOT EXISTS order_items(
  order_seq      INTEGER NOT NULL REFERENCES orders(seq) ON DELETE CASCADE,
  position       INTEGER NOT NULL,
  id             TEXT NOT NULL,
  name           TEXT NOT NULL DEFAULT '',
  price          REAL NOT NULL DEFAULT 0,
  original_price REAL NOT NULL DEFAULT 0,
  discount       INTEGER NOT NULL DEFAULT 0,
  rating         REAL NOT NULL DEFAULT 0,
  reviews        INTEGER NOT NULL DEFAULT 0,
  image          TEXT NOT NULL DEFAULT '',
  category       TEXT NOT NULL DEFAULT '',
  description    TEXT NOT NULL DEFAULT '',
  stock          INTEGER NOT NULL DEFAULT 0,
  sold           INTEGER NOT NULL DEFAULT 0,
  quantity       INTEGER NOT NULL,
  PRIMARY KEY(order_seq, position)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO products
	  (id,name,price,original_price,discount,rating,reviews,image,category,description,stock,sold) VALUES
	  ('1','Wireless Bluetooth Headphones',49.99,79.99,38,4.5,1234,
	   'https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500','Electronics',
	   'High-quality wireless headphones with noise cancellation and 30-hour battery life.',50,2500),
	  ('2','Smart Watch Pro',199.99,299.99,33,4.7,856,
	   'https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500','Wearables',
	   'Advanced smartwatch with health tracking, GPS, and water resistance.',30,1800),
	  ('3','Portable Power Bank 20000mAh',29.99,49.99,40,4.6,2341,
	   'https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=500','Electronics',
	   'High-capacity power bank with fast charging for all your devices.',100,5600),
	  ('4','Mechanical Gaming Keyboard',89.99,129.99,31,4.8,678,
	   'https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500','Electronics',
	   'RGB mechanical keyboard with customizable keys and macro support.',45,890),
	  ('5','Wireless Mouse',24.99,39.99,38,4.4,1567,
	   'https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500','Electronics',
	   'Ergonomic wireless mouse with precision tracking and long battery life.',80,3200),
	  ('6','USB-C Hub Adapter',34.99,54.99,36,4.5,923,
	   'https://images.unsplash.com/photo-1625948515291-69613efd103f?w=500','Electronics',
	   '7-in-1 USB-C hub with HDMI, USB 3.0, SD card reader, and more.',60,1450),
	  ('7','Laptop Stand Aluminum',39.99,59.99,33,4.7,445,
	   'https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500','Accessories',
	   'Adjustable aluminum laptop stand for better ergonomics and cooling.',70,980),
	  ('8','Webcam 1080p HD',59.99,89.99,33,4.6,1123,
	   'https://images.unsplash.com/photo-1587826080692-f439cd0b70da?w=500','Electronics',
	   'Full HD webcam with auto-focus and built-in microphone.',40,2100)`)
	if err != nil {
		return err
	}

	return tx.Commit()
}
