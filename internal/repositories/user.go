package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-book-rental/internal/models"
)

const userSelect = `
	SELECT user_id, username, email, phone_number,
	       street AS "address.street", city AS "address.city",
	       state AS "address.state", zip AS "address.zip",
	       created_at, updated_at
	FROM users
`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := userSelect + `WHERE user_id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user.UserID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	query := userSelect + `ORDER BY created_at, user_id`

	users := make([]models.User, 0)
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a user. A taken email yields ErrUniqueViolation.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (user_id, username, email, phone_number, street, city, state, zip, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	args := []any{
		user.UserID, user.Username, user.Email, user.PhoneNumber,
		user.Address.Street, user.Address.City, user.Address.State, user.Address.Zip,
		user.CreatedAt, user.UpdatedAt,
	}

	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, args, user.UserID, err)

	return mapError(err)
}
