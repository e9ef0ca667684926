package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pennyflow/pennyflow/internal/model"
)

// FindCategoryByID returns the category with the given id, or nil when it
// does not exist.
func (s *SQLiteStorage) FindCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, name, kind, color, icon FROM categories WHERE id = ?`
	var cat model.Category
	var kind string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&cat.ID, &cat.Name, &kind, &cat.Color, &cat.Icon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category %s: %w", id, err)
	}
	cat.Kind = model.CategoryKind(kind)
	return &cat, nil
}

// GetCategories returns all categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, kind, color, icon FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var kind string
		if err := rows.Scan(&cat.ID, &cat.Name, &kind, &cat.Color, &cat.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cat.Kind = model.CategoryKind(kind)
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a new category.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, cat *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if cat == nil || cat.ID == "" || cat.Name == "" {
		return errors.New("category must have an id and a name")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, kind, color, icon) VALUES (?, ?, ?, ?, ?)`,
		cat.ID, cat.Name, string(cat.Kind), cat.Color, cat.Icon)
	if err != nil {
		return fmt.Errorf("failed to create category %s: %w", cat.Name, err)
	}
	return nil
}
