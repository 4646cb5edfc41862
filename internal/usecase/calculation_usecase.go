package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/pricing"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase/interfaces"
)

var (
	ErrCalculationNotFound  = errors.New("calculation not found")
	ErrInvalidCalculationID = errors.New("invalid calculation id")
	ErrInvalidProjectInput  = errors.New("invalid project input")
)

// ICalculationUseCase exposes the cost calculator.
//
//   - POST /api/estimates          => Estimate() (nothing stored)
//   - POST /api/calculations       => CreateCalculation()
//   - GET  /api/calculations/:id   => GetByID()

type ICalculationUseCase interface {
	Estimate(in entities.ProjectInput) (pricing.Result, error)
	CreateCalculation(ctx context.Context, in entities.ProjectInput) (entities.Calculation, error)
	GetByID(ctx context.Context, id string) (entities.Calculation, error)
}

type CalculationUseCase struct {
	repo     interfaces.ICalculationRepository
	recorder interfaces.IEventRecorder
}

var _ ICalculationUseCase = (*CalculationUseCase)(nil)

func NewCalculationUseCase(repo interfaces.ICalculationRepository, recorder interfaces.IEventRecorder) *CalculationUseCase {
	return &CalculationUseCase{repo: repo, recorder: recorder}
}

func (u *CalculationUseCase) Estimate(in entities.ProjectInput) (pricing.Result, error) {
	in, err := normalizeProjectInput(in)
	if err != nil {
		return pricing.Result{}, err
	}
	return price(in)
}

func (u *CalculationUseCase) CreateCalculation(ctx context.Context, in entities.ProjectInput) (entities.Calculation, error) {
	in, err := normalizeProjectInput(in)
	if err != nil {
		return entities.Calculation{}, err
	}

	res, err := price(in)
	if err != nil {
		return entities.Calculation{}, err
	}
	c := entities.Calculation{
		ID:           uuid.NewString(),
		ProjectInput: in,
		BasePrice:    res.BasePrice,
		MaterialCost: res.MaterialCost,
		LaborCost:    res.LaborCost,
		TotalCost:    res.TotalCost,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[calculation][usecase] repository create failed calculation_id=%s err=%v", c.ID, err)
		return entities.Calculation{}, err
	}
	log.Printf("[calculation][usecase] calculation created calculation_id=%s service_type=%s total=%.2f", created.ID, created.ServiceType, created.TotalCost)

	if u.recorder != nil {
		u.recorder.CalculationCreated(string(created.ServiceType), created.TotalCost)
	}
	return created, nil
}

func (u *CalculationUseCase) GetByID(ctx context.Context, id string) (entities.Calculation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Calculation{}, ErrInvalidCalculationID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Calculation{}, err
	}
	if c.ID == "" {
		return entities.Calculation{}, ErrCalculationNotFound
	}
	return c, nil
}

// price rejects inputs whose amounts overflow float64.
func price(in entities.ProjectInput) (pricing.Result, error) {
	res := pricing.Calculate(in)
	if math.IsInf(res.TotalCost, 0) || math.IsNaN(res.TotalCost) {
		log.Printf("[calculation][usecase] amounts overflow service_type=%s height=%g surface_area=%g", in.ServiceType, in.Height, in.SurfaceArea)
		return pricing.Result{}, ErrInvalidProjectInput
	}
	return res, nil
}

// normalizeProjectInput enforces the pricing preconditions. Membership of the
// service/coating sets is not checked: unknown values price with defaults.
func normalizeProjectInput(in entities.ProjectInput) (entities.ProjectInput, error) {
	in.ServiceType = entities.ServiceType(strings.TrimSpace(string(in.ServiceType)))
	in.CoatingType = entities.CoatingType(strings.TrimSpace(string(in.CoatingType)))
	if in.ServiceType == "" || in.CoatingType == "" {
		return entities.ProjectInput{}, ErrInvalidProjectInput
	}
	if !(in.Height > 0) || !(in.SurfaceArea > 0) {
		return entities.ProjectInput{}, ErrInvalidProjectInput
	}
	if in.Diameter != nil && !(*in.Diameter > 0) {
		return entities.ProjectInput{}, ErrInvalidProjectInput
	}
	if !in.ServiceType.IsKnown() {
		log.Printf("[calculation][usecase] unrecognized service_type=%q priced with default rates", in.ServiceType)
	}
	return in, nil
}
