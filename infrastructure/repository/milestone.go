package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

const milestoneTable = "milestone m"

var milestoneColumns = []string{
	"m.id",
	"m.project_id",
	"m.team_id",
	"m.title",
	"m.description",
	"m.due_date",
	"m.status",
	"m.has_payment",
	"m.payment_amount",
	"m.payment_status",
	"m.created_at",
	"m.updated_at",
}

type MilestoneRepository interface {
	ListMilestones() ([]*domain.Milestone, error)
	ListMilestonesByProject(projectID string) ([]*domain.Milestone, error)
	GetMilestoneByID(id string) (*domain.Milestone, error)
	CreateMilestone(milestone *domain.Milestone) error
	UpdateMilestone(milestone *domain.Milestone) error
	DeleteMilestone(id string) error
}

type milestoneRepository struct {
	conn *postgres.Connection
}

func NewMilestoneRepository(conn *postgres.Connection) MilestoneRepository {
	return &milestoneRepository{conn: conn}
}

func (r *milestoneRepository) ListMilestones() ([]*domain.Milestone, error) {
	return r.list(nil)
}

func (r *milestoneRepository) ListMilestonesByProject(projectID string) ([]*domain.Milestone, error) {
	return r.list(squirrel.Eq{"m.project_id": projectID})
}

func (r *milestoneRepository) list(where interface{}) ([]*domain.Milestone, error) {
	queryBuilder := squirrel.
		Select(milestoneColumns...).
		From(milestoneTable).
		OrderBy("m.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
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

	milestones := make([]*domain.Milestone, 0)
	for rows.Next() {
		milestone, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear marco: %w", err)
		}
		milestones = append(milestones, milestone)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return milestones, nil
}

func (r *milestoneRepository) GetMilestoneByID(id string) (*domain.Milestone, error) {
	query, args, err := squirrel.
		Select(milestoneColumns...).
		From(milestoneTable).
		Where(squirrel.Eq{"m.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	milestone, err := scanMilestoneRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear marco: %w", err)
	}

	return milestone, nil
}

func (r *milestoneRepository) CreateMilestone(milestone *domain.Milestone) error {
	query, args, err := squirrel.
		Insert("milestone").
		Columns(
			"id", "project_id", "team_id", "title", "description",
			"due_date", "status", "has_payment", "payment_amount", "payment_status",
		).
		Values(
			milestone.ID, milestone.ProjectID, milestone.TeamID, milestone.Title, milestone.Description,
			milestone.DueDate, milestone.Status, milestone.HasPayment, milestone.PaymentAmount, milestone.PaymentStatus,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir marco: %w", err)
	}

	return nil
}

func (r *milestoneRepository) UpdateMilestone(milestone *domain.Milestone) error {
	query, args, err := squirrel.
		Update("milestone").
		Set("project_id", milestone.ProjectID).
		Set("team_id", milestone.TeamID).
		Set("title", milestone.Title).
		Set("description", milestone.Description).
		Set("due_date", milestone.DueDate).
		Set("status", milestone.Status).
		Set("has_payment", milestone.HasPayment).
		Set("payment_amount", milestone.PaymentAmount).
		Set("payment_status", milestone.PaymentStatus).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": milestone.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar marco: %w", err)
	}

	return nil
}

func (r *milestoneRepository) DeleteMilestone(id string) error {
	query, args, err := squirrel.
		Delete("milestone").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover marco: %w", err)
	}

	return nil
}

func scanMilestoneFields(s projectScanner) (*domain.Milestone, error) {
	milestone := &domain.Milestone{}

	err := s.Scan(
		&milestone.ID,
		&milestone.ProjectID,
		&milestone.TeamID,
		&milestone.Title,
		&milestone.Description,
		&milestone.DueDate,
		&milestone.Status,
		&milestone.HasPayment,
		&milestone.PaymentAmount,
		&milestone.PaymentStatus,
		&milestone.CreatedAt,
		&milestone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return milestone, nil
}

func scanMilestone(rows *sql.Rows) (*domain.Milestone, error) {
	return scanMilestoneFields(rows)
}

func scanMilestoneRow(row *sql.Row) (*domain.Milestone, error) {
	return scanMilestoneFields(row)
}
