package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/pricing"
)

func TestFromLead(t *testing.T) {
	now := time.Now().UTC()
	l := entities.Lead{
		ID:          "lead-1",
		Name:        "A",
		Phone:       "+7",
		Email:       "a@b.com",
		ServiceType: entities.ServiceTypeOther,
		Source:      "website",
		CreatedAt:   now,
	}

	res := FromLead(l)
	if res.ID != "lead-1" || res.ServiceType != "other" || res.Source != "website" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}

	b, _ := json.Marshal(res)
	for _, key := range []string{`"serviceType"`, `"createdAt"`, `"message":""`} {
		if !strings.Contains(string(b), key) {
			t.Fatalf("expected %s in %s", key, b)
		}
	}
}

func TestFromLeads_EmptyIsArray(t *testing.T) {
	b, _ := json.Marshal(FromLeads(nil))
	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}
}

func TestFromCalculation(t *testing.T) {
	c := entities.Calculation{
		ID:           "calc-1",
		ProjectInput: entities.ProjectInput{ServiceType: "mspro-quad", Height: 10, SurfaceArea: 50, CoatingType: "standard"},
		BasePrice:    800,
		MaterialCost: 52000,
		LaborCost:    20000,
		TotalCost:    72000,
		CreatedAt:    time.Now().UTC(),
	}

	res := FromCalculation(c)
	if res.TotalCost != 72000 || res.BasePrice != 800 || res.ServiceType != "mspro-quad" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Breakdown) != 2 || res.Breakdown[0].Label != "Материалы" || res.Breakdown[1].Amount != 20000 {
		t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
	}

	var decoded map[string]interface{}
	b, _ := json.Marshal(res)
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["diameter"] != nil {
		t.Fatalf("expected null diameter, got %v", decoded["diameter"])
	}
	if decoded["totalCost"] != 72000.0 || decoded["id"] != "calc-1" {
		t.Fatalf("expected flattened fields, got %v", decoded)
	}
}

func TestFromEstimate(t *testing.T) {
	r := pricing.Calculate(entities.ProjectInput{ServiceType: "anti-corrosion", Height: 60, SurfaceArea: 100, CoatingType: "epoxy"})
	res := FromEstimate(r)
	if res.TotalCost != r.TotalCost || len(res.Breakdown) != 2 {
		t.Fatalf("unexpected estimate: %+v", res)
	}
	if res.Breakdown[1].Label != "Работа" {
		t.Fatalf("unexpected breakdown order: %+v", res.Breakdown)
	}
}
