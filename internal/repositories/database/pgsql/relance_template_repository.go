package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	"github.com/pverdier/creance_manager_app/internal/models"
	"github.com/pverdier/creance_manager_app/internal/utils/mapping"
)

type PgxRelanceTemplateRepository struct {
	pool *pgxpool.Pool
}

// newPgxRelanceTemplateRepository creates a new repository for reminder templates.
func newPgxRelanceTemplateRepository(pool *pgxpool.Pool) portsrepo.RelanceTemplateRepositoryFacade {
	return &PgxRelanceTemplateRepository{pool: pool}
}

var _ portsrepo.RelanceTemplateRepositoryFacade = (*PgxRelanceTemplateRepository)(nil)

const templateColumns = `template_id, name, type, subject, content, variables, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanTemplate(row pgx.Row) (models.RelanceTemplate, error) {
	var m models.RelanceTemplate
	err := row.Scan(
		&m.TemplateID,
		&m.Name,
		&m.Type,
		&m.Subject,
		&m.Content,
		&m.Variables,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTemplate inserts a new reminder template.
func (r *PgxRelanceTemplateRepository) SaveTemplate(ctx context.Context, template domain.RelanceTemplate) error {
	m := mapping.ToModelRelanceTemplate(template)

	query := `
		INSERT INTO relance_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TemplateID,
		m.Name,
		m.Type,
		m.Subject,
		m.Content,
		m.Variables,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: template with ID %s already exists", apperrors.ErrDuplicate, m.TemplateID)
		}
		return fmt.Errorf("failed to save template %s: %w", m.TemplateID, err)
	}
	return nil
}

// FindTemplateByID retrieves a template by its ID.
func (r *PgxRelanceTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.RelanceTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM relance_templates WHERE template_id = $1;`

	m, err := scanTemplate(r.pool.QueryRow(ctx, query, templateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find template by ID %s: %w", templateID, err)
	}

	d := mapping.ToDomainRelanceTemplate(m)
	return &d, nil
}

// ListTemplates retrieves all templates ordered by name.
func (r *PgxRelanceTemplateRepository) ListTemplates(ctx context.Context) ([]domain.RelanceTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM relance_templates ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.RelanceTemplate{}
	for rows.Next() {
		m, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template row: %w", err)
		}
		templates = append(templates, mapping.ToDomainRelanceTemplate(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", rows.Err())
	}

	return templates, nil
}

// CountRulesReferencingTemplate returns how many rules reference the template.
func (r *PgxRelanceTemplateRepository) CountRulesReferencingTemplate(ctx context.Context, templateID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM relance_rules WHERE template_id = $1;`, templateID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rules referencing template %s: %w", templateID, err)
	}
	return count, nil
}

// UpdateTemplate updates an existing template. The type is immutable: rules
// referencing the template rely on the channel it was created for.
func (r *PgxRelanceTemplateRepository) UpdateTemplate(ctx context.Context, template domain.RelanceTemplate) error {
	m := mapping.ToModelRelanceTemplate(template)

	query := `
		UPDATE relance_templates
		SET name = $2, subject = $3, content = $4, variables = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE template_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.TemplateID,
		m.Name,
		m.Subject,
		m.Content,
		m.Variables,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update template %s: %w", m.TemplateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTemplate removes a template.
func (r *PgxRelanceTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM relance_templates WHERE template_id = $1;`, templateID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: template %s is referenced by a rule", apperrors.ErrConflict, templateID)
		}
		return fmt.Errorf("failed to delete template %s: %w", templateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
