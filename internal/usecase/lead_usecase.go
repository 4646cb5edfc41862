package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase/interfaces"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidLeadID = errors.New("invalid lead id")
	ErrInvalidLead   = errors.New("invalid lead")
)

// ILeadUseCase exposes lead capture operations.
//
// Mapping to the HTTP surface:
//   - POST /api/leads      => CreateLead()
//   - GET  /api/leads      => ListLeads()
//   - GET  /api/leads/:id  => GetByID()

type ILeadUseCase interface {
	CreateLead(ctx context.Context, in entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	ListLeads(ctx context.Context) ([]entities.Lead, error)
}

type LeadUseCase struct {
	repo     interfaces.ILeadRepository
	notifier interfaces.ILeadNotifier
	recorder interfaces.IEventRecorder
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

var emailValidator = validator.New()

// NewLeadUseCase wires the lead repository. notifier and recorder may be nil.
func NewLeadUseCase(repo interfaces.ILeadRepository, notifier interfaces.ILeadNotifier, recorder interfaces.IEventRecorder) *LeadUseCase {
	return &LeadUseCase{repo: repo, notifier: notifier, recorder: recorder}
}

func (u *LeadUseCase) CreateLead(ctx context.Context, in entities.Lead) (entities.Lead, error) {
	l := entities.Lead{
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		ServiceType: entities.ServiceType(strings.TrimSpace(string(in.ServiceType))),
		Message:     in.Message,
		Source:      strings.TrimSpace(in.Source),
	}
	if l.Name == "" || l.Phone == "" || l.Email == "" || l.ServiceType == "" {
		return entities.Lead{}, ErrInvalidLead
	}
	if err := emailValidator.Var(l.Email, "email"); err != nil {
		return entities.Lead{}, ErrInvalidLead
	}
	if l.Source == "" {
		l.Source = entities.DefaultLeadSource
	}

	// SQL backends keep microsecond precision; truncate so a read returns the same value.
	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		log.Printf("[lead][usecase] repository create failed lead_id=%s err=%v", l.ID, err)
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] lead created lead_id=%s service_type=%s source=%s", created.ID, created.ServiceType, created.Source)

	if u.recorder != nil {
		u.recorder.LeadCreated(string(created.ServiceType), created.Source)
	}
	if u.notifier != nil {
		if err := u.notifier.NotifyNewLead(ctx, created); err != nil {
			log.Printf("[lead][usecase] notification failed lead_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) ListLeads(ctx context.Context) ([]entities.Lead, error) {
	leads, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []entities.Lead{}
	}
	return leads, nil
}
