package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase/interfaces"
)

const calculationColumns = `id, service_type, coating_type, height, diameter, surface_area,
	base_price, material_cost, labor_cost, total_cost, created_at`

// CalculationSQLRepository persists Calculation entities in a relational database.

type CalculationSQLRepository struct {
	db      *sql.DB
	dialect Dialect
}

var _ interfaces.ICalculationRepository = (*CalculationSQLRepository)(nil)

func NewCalculationSQLRepository(db *sql.DB, dialect Dialect) *CalculationSQLRepository {
	return &CalculationSQLRepository{db: db, dialect: dialect}
}

func (r *CalculationSQLRepository) Create(ctx context.Context, c entities.Calculation) (entities.Calculation, error) {
	diameter := sql.NullFloat64{}
	if c.Diameter != nil {
		diameter = sql.NullFloat64{Float64: *c.Diameter, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, r.dialect.rebind(`
		INSERT INTO calculations (`+calculationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		c.ID, string(c.ServiceType), string(c.CoatingType), c.Height, diameter, c.SurfaceArea,
		c.BasePrice, c.MaterialCost, c.LaborCost, c.TotalCost, r.dialect.timeArg(c.CreatedAt))
	if err != nil {
		return entities.Calculation{}, fmt.Errorf("insert calculation: %w", err)
	}
	return c, nil
}

func (r *CalculationSQLRepository) GetByID(ctx context.Context, id string) (entities.Calculation, error) {
	var (
		c           entities.Calculation
		serviceType string
		coatingType string
		diameter    sql.NullFloat64
		createdAt   sqlTime
	)
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(`SELECT `+calculationColumns+` FROM calculations WHERE id = ?`), id).Scan(
		&c.ID, &serviceType, &coatingType, &c.Height, &diameter, &c.SurfaceArea,
		&c.BasePrice, &c.MaterialCost, &c.LaborCost, &c.TotalCost, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Calculation{}, nil
	}
	if err != nil {
		return entities.Calculation{}, fmt.Errorf("get calculation: %w", err)
	}

	c.ServiceType = entities.ServiceType(serviceType)
	c.CoatingType = entities.CoatingType(coatingType)
	if diameter.Valid {
		d := diameter.Float64
		c.Diameter = &d
	}
	c.CreatedAt = createdAt.Time
	return c, nil
}
