package storage

import (
	"context"
	"database/sql"
	"fmt"

	"foodcourt/catalog-svc/internal/domain"
	"foodcourt/catalog-svc/internal/service"
)

const restaurantColumns = `id, name, COALESCE(image_url, ''), category, rating, delivery_time, delivery_fee, COALESCE(description, '')`

const foodColumns = `id, name, COALESCE(image_url, ''), price, COALESCE(description, ''), category, restaurant_id`

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row scanner) (domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(&rest.ID, &rest.Name, &rest.Image, &rest.Category, &rest.Rating,
		&rest.DeliveryTime, &rest.DeliveryFee, &rest.Description)
	return rest, err
}

func scanFood(row scanner) (domain.Food, error) {
	var food domain.Food
	err := row.Scan(&food.ID, &food.Name, &food.Image, &food.Price, &food.Description,
		&food.Category, &food.RestaurantID)
	return food, err
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) ListFoods(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods ORDER BY id`
	args := []interface{}{}
	if restaurantID > 0 {
		query = `SELECT ` + foodColumns + ` FROM foods WHERE restaurant_id = $1 ORDER BY id`
		args = append(args, restaurantID)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

func (r *PostgresRepository) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	food, err := scanFood(r.DB.QueryRowContext(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			image_url TEXT,
			category TEXT NOT NULL,
			rating NUMERIC(2,1) NOT NULL DEFAULT 0,
			delivery_time TEXT NOT NULL,
			delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (delivery_fee >= 0),
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS foods (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			image_url TEXT,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			description TEXT,
			category TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS foods_restaurant_id_idx ON foods (restaurant_id)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Seed inserts the demo catalog when the restaurants table is empty. It reports
// whether rows were written.
func (r *PostgresRepository) Seed(ctx context.Context, restaurants []domain.Restaurant, foods []domain.Food) (bool, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count); err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	ids := make(map[int]int, len(restaurants))
	for _, rest := range restaurants {
		var id int
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO restaurants (name, image_url, category, rating, delivery_time, delivery_fee, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			rest.Name, rest.Image, rest.Category, rest.Rating, rest.DeliveryTime, rest.DeliveryFee, rest.Description,
		).Scan(&id); err != nil {
			return false, fmt.Errorf("insert restaurant %q: %w", rest.Name, err)
		}
		ids[rest.ID] = id
	}

	for _, food := range foods {
		restaurantID, ok := ids[food.RestaurantID]
		if !ok {
			return false, fmt.Errorf("food %q references unknown restaurant %d", food.Name, food.RestaurantID)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO foods (restaurant_id, name, image_url, price, description, category)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			restaurantID, food.Name, food.Image, food.Price, food.Description, food.Category,
		); err != nil {
			return false, fmt.Errorf("insert food %q: %w", food.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

var _ service.CatalogRepository = (*PostgresRepository)(nil)
