package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/daehan-lim/moneychat/internal/database"
	"github.com/daehan-lim/moneychat/internal/models"
)

type CategoryRepository struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO category (user_id, category_name, type, usage_count) VALUES ($1, $2, $3, $4)
		 RETURNING category_id`,
		category.UserID, category.CategoryName, category.Type, category.UsageCount,
	).Scan(&category.CategoryID)
}

func (r *CategoryRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Category, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT category_id, user_id, category_name, type, usage_count
		 FROM category WHERE user_id = $1 ORDER BY usage_count DESC, category_name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		cat := &models.Category{}
		if err := rows.Scan(&cat.CategoryID, &cat.UserID, &cat.CategoryName, &cat.Type, &cat.UsageCount); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (r *CategoryRepository) GetOrCreateByName(ctx context.Context, userID int64, name string, typ models.TransactionType) (*models.Category, error) {
	cat := &models.Category{}
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO category (user_id, category_name, type, usage_count)
		 VALUES ($1, $2, $3, 0)
		 ON CONFLICT DO NOTHING
		 RETURNING category_id, user_id, category_name, type, usage_count`,
		userID, name, typ,
	).Scan(&cat.CategoryID, &cat.UserID, &cat.CategoryName, &cat.Type, &cat.UsageCount)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		// Conflict: the category already exists, fetch it
		err = r.db.Pool.QueryRow(ctx,
			`SELECT category_id, user_id, category_name, type, usage_count
			 FROM category WHERE user_id = $1 AND category_name = $2 AND type = $3`,
			userID, name, typ,
		).Scan(&cat.CategoryID, &cat.UserID, &cat.CategoryName, &cat.Type, &cat.UsageCount)
		if err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func (r *CategoryRepository) IncrementUsage(ctx context.Context, categoryID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE category SET usage_count = usage_count + 1 WHERE category_id = $1`,
		categoryID,
	)
	return err
}

// SeedDefaults inserts the default category set for a user that has none yet.
func (r *CategoryRepository) SeedDefaults(ctx context.Context, userID int64) error {
	existing, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, cat := range models.DefaultCategories() {
		cat.UserID = userID
		if err := r.Create(ctx, &cat); err != nil {
			return err
		}
	}
	return nil
}
