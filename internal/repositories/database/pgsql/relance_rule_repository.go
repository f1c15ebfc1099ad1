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

type PgxRelanceRuleRepository struct {
	pool *pgxpool.Pool
}

// newPgxRelanceRuleRepository creates a new repository for reminder rules.
func newPgxRelanceRuleRepository(pool *pgxpool.Pool) portsrepo.RelanceRuleRepositoryFacade {
	return &PgxRelanceRuleRepository{pool: pool}
}

var _ portsrepo.RelanceRuleRepositoryFacade = (*PgxRelanceRuleRepository)(nil)

const ruleColumns = `rule_id, name, trigger_days, action, template_id, new_status, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanRule(row pgx.Row) (models.RelanceRule, error) {
	var m models.RelanceRule
	err := row.Scan(
		&m.RuleID,
		&m.Name,
		&m.TriggerDays,
		&m.Action,
		&m.TemplateID,
		&m.NewStatus,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRule inserts a new reminder rule.
func (r *PgxRelanceRuleRepository) SaveRule(ctx context.Context, rule domain.RelanceRule) error {
	m := mapping.ToModelRelanceRule(rule)

	query := `
		INSERT INTO relance_rules (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.RuleID,
		m.Name,
		m.TriggerDays,
		m.Action,
		m.TemplateID,
		m.NewStatus,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: rule with ID %s already exists", apperrors.ErrDuplicate, m.RuleID)
			case "23503":
				return fmt.Errorf("%w: template not found for rule %s", apperrors.ErrNotFound, m.RuleID)
			}
		}
		return fmt.Errorf("failed to save rule %s: %w", m.RuleID, err)
	}
	return nil
}

// FindRuleByID retrieves a rule by its ID.
func (r *PgxRelanceRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.RelanceRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM relance_rules WHERE rule_id = $1;`

	m, err := scanRule(r.pool.QueryRow(ctx, query, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rule by ID %s: %w", ruleID, err)
	}

	d := mapping.ToDomainRelanceRule(m)
	return &d, nil
}

// ListRules retrieves all rules ordered by trigger days.
func (r *PgxRelanceRuleRepository) ListRules(ctx context.Context) ([]domain.RelanceRule, error) {
	return r.listRules(ctx, false)
}

// ListActiveRules retrieves active rules ordered by trigger days.
func (r *PgxRelanceRuleRepository) ListActiveRules(ctx context.Context) ([]domain.RelanceRule, error) {
	return r.listRules(ctx, true)
}

func (r *PgxRelanceRuleRepository) listRules(ctx context.Context, activeOnly bool) ([]domain.RelanceRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM relance_rules`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY trigger_days, name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	rules := []models.RelanceRule{}
	for rows.Next() {
		m, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule row: %w", err)
		}
		rules = append(rules, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating rule rows: %w", rows.Err())
	}

	return mapping.ToDomainRelanceRuleSlice(rules), nil
}

// UpdateRule updates an existing rule. The action is immutable: changing the
// kind of a rule is a delete-and-recreate operation.
func (r *PgxRelanceRuleRepository) UpdateRule(ctx context.Context, rule domain.RelanceRule) error {
	m := mapping.ToModelRelanceRule(rule)

	query := `
		UPDATE relance_rules
		SET name = $2, trigger_days = $3, template_id = $4, new_status = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE rule_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.RuleID,
		m.Name,
		m.TriggerDays,
		m.TemplateID,
		m.NewStatus,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: template not found for rule %s", apperrors.ErrNotFound, m.RuleID)
		}
		return fmt.Errorf("failed to update rule %s: %w", m.RuleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRule removes a rule.
func (r *PgxRelanceRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM relance_rules WHERE rule_id = $1;`, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete rule %s: %w", ruleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
