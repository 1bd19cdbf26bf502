package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

const milestoneUpdateTable = "milestone_update mu"

// MilestoneUpdateRepository lida com as notas imutáveis dos marcos: apenas
// inserção e leitura filtrada por período, nunca alteração ou remoção.
type MilestoneUpdateRepository interface {
	ListUpdatesByMilestone(milestoneID string, from, to *time.Time) ([]*domain.MilestoneUpdate, error)
	CreateUpdate(update *domain.MilestoneUpdate) error
}

type milestoneUpdateRepository struct {
	conn *postgres.Connection
}

func NewMilestoneUpdateRepository(conn *postgres.Connection) MilestoneUpdateRepository {
	return &milestoneUpdateRepository{conn: conn}
}

func (r *milestoneUpdateRepository) ListUpdatesByMilestone(
	milestoneID string,
	from, to *time.Time,
) ([]*domain.MilestoneUpdate, error) {
	queryBuilder := squirrel.
		Select(
			"mu.id",
			"mu.milestone_id",
			"mu.author_id",
			"COALESCE(u.name || ' ' || u.lastname, '')",
			"mu.body",
			"mu.created_at",
		).
		From(milestoneUpdateTable).
		LeftJoin("app_user u ON u.id = mu.author_id").
		Where(squirrel.Eq{"mu.milestone_id": milestoneID}).
		OrderBy("mu.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if from != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"mu.created_at": *from})
	}

	if to != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"mu.created_at": *to})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	updates := make([]*domain.MilestoneUpdate, 0)
	for rows.Next() {
		update := &domain.MilestoneUpdate{}
		err := rows.Scan(
			&update.ID,
			&update.MilestoneID,
			&update.AuthorID,
			&update.AuthorName,
			&update.Body,
			&update.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear nota: %w", err)
		}
		updates = append(updates, update)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return updates, nil
}

func (r *milestoneUpdateRepository) CreateUpdate(update *domain.MilestoneUpdate) error {
	query, args, err := squirrel.
		Insert("milestone_update").
		Columns("id", "milestone_id", "author_id", "body").
		Values(update.ID, update.MilestoneID, update.AuthorID, update.Body).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir nota: %w", err)
	}

	return nil
}
