package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

const snapshotTable = "portfolio_snapshot ps"

type SnapshotRepository interface {
	GetByPeriod(period string) (*domain.SnapshotResponse, error)
	GetAllPeriods() ([]string, error)
	SaveOrUpdateSnapshots(snapshots []*domain.PortfolioSnapshot) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{conn: conn}
}

func (r *snapshotRepository) GetByPeriod(period string) (*domain.SnapshotResponse, error) {
	query, args, err := squirrel.
		Select(
			"ps.id",
			"ps.period",
			"ps.project_id",
			"ps.project_name",
			"ps.milestone_count",
			"ps.payment_total",
			"ps.pending_count",
			"ps.sent_count",
			"ps.paid_count",
			"ps.created_at",
			"ps.updated_at",
		).
		From(snapshotTable).
		Where(squirrel.Eq{"ps.period": period}).
		OrderBy("ps.payment_total DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.SnapshotResponse{
				Period:     period,
				Rows:       []*domain.PortfolioSnapshot{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.PortfolioSnapshot, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item := &domain.PortfolioSnapshot{}
		err := rows.Scan(
			&item.ID,
			&item.Period,
			&item.ProjectID,
			&item.ProjectName,
			&item.MilestoneCount,
			&item.PaymentTotal,
			&item.PendingCount,
			&item.SentCount,
			&item.PaidCount,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}

		snapshots = append(snapshots, item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.SnapshotResponse{
		Period:     period,
		Rows:       snapshots,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *snapshotRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT ps.period").
		From(snapshotTable).
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	sort.Strings(periods)

	return periods, nil
}

func (r *snapshotRepository) SaveOrUpdateSnapshots(snapshots []*domain.PortfolioSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("portfolio_snapshot").
		Columns(
			"period",
			"project_id",
			"project_name",
			"milestone_count",
			"payment_total",
			"pending_count",
			"sent_count",
			"paid_count",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, snapshot := range snapshots {
		query = query.Values(
			snapshot.Period,
			snapshot.ProjectID,
			snapshot.ProjectName,
			snapshot.MilestoneCount,
			snapshot.PaymentTotal,
			snapshot.PendingCount,
			snapshot.SentCount,
			snapshot.PaidCount,
		)
	}

	// Upsert por (period, project_id)
	query = query.Suffix(`
		ON CONFLICT (period, project_id) DO UPDATE SET
			project_name = EXCLUDED.project_name,
			milestone_count = EXCLUDED.milestone_count,
			payment_total = EXCLUDED.payment_total,
			pending_count = EXCLUDED.pending_count,
			sent_count = EXCLUDED.sent_count,
			paid_count = EXCLUDED.paid_count,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
