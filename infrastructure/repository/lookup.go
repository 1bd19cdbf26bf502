package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

const lookupTable = "lookup l"

var lookupColumns = []string{
	"l.id",
	"l.kind",
	"l.name",
	"l.created_at",
	"l.updated_at",
}

type LookupRepository interface {
	ListLookups(kinds []domain.LookupKind) ([]*domain.Lookup, error)
	GetLookupByID(id string) (*domain.Lookup, error)
	CreateLookup(lookup *domain.Lookup) error
	UpdateLookup(lookup *domain.Lookup) error
	DeleteLookup(id string) error
}

type lookupRepository struct {
	conn *postgres.Connection
}

func NewLookupRepository(conn *postgres.Connection) LookupRepository {
	return &lookupRepository{conn: conn}
}

// ListLookups lista as entidades de referência, opcionalmente restritas a um
// conjunto de tipos. Lista vazia de tipos retorna todas as tabelas.
func (r *lookupRepository) ListLookups(kinds []domain.LookupKind) ([]*domain.Lookup, error) {
	queryBuilder := squirrel.
		Select(lookupColumns...).
		From(lookupTable).
		OrderBy("l.kind ASC", "l.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(kinds) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"l.kind": kinds})
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

	lookups := make([]*domain.Lookup, 0)
	for rows.Next() {
		lookup := &domain.Lookup{}
		err := rows.Scan(&lookup.ID, &lookup.Kind, &lookup.Name, &lookup.CreatedAt, &lookup.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lookup: %w", err)
		}
		lookups = append(lookups, lookup)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return lookups, nil
}

func (r *lookupRepository) GetLookupByID(id string) (*domain.Lookup, error) {
	query, args, err := squirrel.
		Select(lookupColumns...).
		From(lookupTable).
		Where(squirrel.Eq{"l.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	lookup := &domain.Lookup{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(&lookup.ID, &lookup.Kind, &lookup.Name, &lookup.CreatedAt, &lookup.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lookup: %w", err)
	}

	return lookup, nil
}

func (r *lookupRepository) CreateLookup(lookup *domain.Lookup) error {
	query, args, err := squirrel.
		Insert("lookup").
		Columns("id", "kind", "name").
		Values(lookup.ID, lookup.Kind, lookup.Name).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir lookup: %w", err)
	}

	return nil
}

func (r *lookupRepository) UpdateLookup(lookup *domain.Lookup) error {
	query, args, err := squirrel.
		Update("lookup").
		Set("name", lookup.Name).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": lookup.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar lookup: %w", err)
	}

	return nil
}

func (r *lookupRepository) DeleteLookup(id string) error {
	query, args, err := squirrel.
		Delete("lookup").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover lookup: %w", err)
	}

	return nil
}
