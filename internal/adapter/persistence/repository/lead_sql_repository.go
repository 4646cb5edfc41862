package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase/interfaces"
)

const leadColumns = `id, name, phone, email, service_type, message, source, created_at`

// LeadSQLRepository persists Lead entities in a relational database (PostgreSQL or SQLite).
//
// Table requirements (see database/migrations):
//   - leads, PK id (text)

type LeadSQLRepository struct {
	db      *sql.DB
	dialect Dialect
}

var _ interfaces.ILeadRepository = (*LeadSQLRepository)(nil)

func NewLeadSQLRepository(db *sql.DB, dialect Dialect) *LeadSQLRepository {
	return &LeadSQLRepository{db: db, dialect: dialect}
}

func (r *LeadSQLRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	_, err := r.db.ExecContext(ctx, r.dialect.rebind(`
		INSERT INTO leads (`+leadColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		l.ID, l.Name, l.Phone, l.Email, string(l.ServiceType), l.Message, l.Source, r.dialect.timeArg(l.CreatedAt))
	if err != nil {
		return entities.Lead{}, fmt.Errorf("insert lead: %w", err)
	}
	return l, nil
}

func (r *LeadSQLRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.rebind(`SELECT `+leadColumns+` FROM leads WHERE id = ?`), id)
	l, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Lead{}, nil
	}
	if err != nil {
		return entities.Lead{}, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

func (r *LeadSQLRepository) List(ctx context.Context) ([]entities.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	out := []entities.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(s rowScanner) (entities.Lead, error) {
	var (
		l           entities.Lead
		serviceType string
		createdAt   sqlTime
	)
	if err := s.Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &serviceType, &l.Message, &l.Source, &createdAt); err != nil {
		return entities.Lead{}, err
	}
	l.ServiceType = entities.ServiceType(serviceType)
	l.CreatedAt = createdAt.Time
	return l, nil
}
