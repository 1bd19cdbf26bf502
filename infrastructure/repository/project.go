// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

const projectTable = "project p"

var projectColumns = []string{
	"p.id",
	"p.code",
	"p.name",
	"p.description",
	"p.country_id",
	"p.category_id",
	"p.team_id",
	"p.product_id",
	"p.status_id",
	"p.manager_id",
	"p.customer_id",
	"p.launch_date",
	"p.actual_start_date",
	"p.expected_closure_date",
	"p.progress",
	"p.revenue_impact",
	"p.strategic_value",
	"p.delivery_risk",
	"p.customer_pressure",
	"p.resource_load",
	"p.created_at",
	"p.updated_at",
}

type ProjectRepository interface {
	ListProjects() ([]*domain.Project, error)
	GetProjectByID(id string) (*domain.Project, error)
	CreateProject(project *domain.Project) error
	UpdateProject(project *domain.Project) error
	DeleteProject(id string) error
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{conn: conn}
}

func (r *projectRepository) ListProjects() ([]*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns...).
		From(projectTable).
		OrderBy("p.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) GetProjectByID(id string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns...).
		From(projectTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	project, err := scanProjectRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
	}

	return project, nil
}

func (r *projectRepository) CreateProject(project *domain.Project) error {
	query, args, err := squirrel.
		Insert("project").
		Columns(
			"id", "code", "name", "description",
			"country_id", "category_id", "team_id", "product_id", "status_id",
			"manager_id", "customer_id",
			"launch_date", "actual_start_date", "expected_closure_date",
			"progress",
			"revenue_impact", "strategic_value", "delivery_risk", "customer_pressure", "resource_load",
		).
		Values(
			project.ID, project.Code, project.Name, project.Description,
			project.CountryID, project.CategoryID, project.TeamID, project.ProductID, project.StatusID,
			project.ManagerID, project.CustomerID,
			project.LaunchDate, project.ActualStartDate, project.ExpectedClosureDate,
			project.Progress,
			project.RevenueImpact, project.StrategicValue, project.DeliveryRisk, project.CustomerPressure, project.ResourceLoad,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir projeto: %w", err)
	}

	return nil
}

func (r *projectRepository) UpdateProject(project *domain.Project) error {
	query, args, err := squirrel.
		Update("project").
		Set("name", project.Name).
		Set("description", project.Description).
		Set("country_id", project.CountryID).
		Set("category_id", project.CategoryID).
		Set("team_id", project.TeamID).
		Set("product_id", project.ProductID).
		Set("status_id", project.StatusID).
		Set("manager_id", project.ManagerID).
		Set("customer_id", project.CustomerID).
		Set("launch_date", project.LaunchDate).
		Set("actual_start_date", project.ActualStartDate).
		Set("expected_closure_date", project.ExpectedClosureDate).
		Set("progress", project.Progress).
		Set("revenue_impact", project.RevenueImpact).
		Set("strategic_value", project.StrategicValue).
		Set("delivery_risk", project.DeliveryRisk).
		Set("customer_pressure", project.CustomerPressure).
		Set("resource_load", project.ResourceLoad).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": project.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar projeto: %w", err)
	}

	return nil
}

func (r *projectRepository) DeleteProject(id string) error {
	query, args, err := squirrel.
		Delete("project").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover projeto: %w", err)
	}

	return nil
}

type projectScanner interface {
	Scan(dest ...interface{}) error
}

func scanProjectFields(s projectScanner) (*domain.Project, error) {
	project := &domain.Project{}

	err := s.Scan(
		&project.ID,
		&project.Code,
		&project.Name,
		&project.Description,
		&project.CountryID,
		&project.CategoryID,
		&project.TeamID,
		&project.ProductID,
		&project.StatusID,
		&project.ManagerID,
		&project.CustomerID,
		&project.LaunchDate,
		&project.ActualStartDate,
		&project.ExpectedClosureDate,
		&project.Progress,
		&project.RevenueImpact,
		&project.StrategicValue,
		&project.DeliveryRisk,
		&project.CustomerPressure,
		&project.ResourceLoad,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return project, nil
}

func scanProject(rows *sql.Rows) (*domain.Project, error) {
	return scanProjectFields(rows)
}

func scanProjectRow(row *sql.Row) (*domain.Project, error) {
	return scanProjectFields(row)
}
