package entities

import "time"

// Calculation is a persisted cost-estimation request together with its result.
//
// Storage model:
//   - SQL: table calculations, PK id
//   - DynamoDB: table calculations, PK id
//
// Only the scalar amounts are stored; Breakdown is derived from them.
type Calculation struct {
	ID string `json:"id"`
	ProjectInput
	BasePrice    float64   `json:"basePrice"`
	MaterialCost float64   `json:"materialCost"`
	LaborCost    float64   `json:"laborCost"`
	TotalCost    float64   `json:"totalCost"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Breakdown returns the display lines in their fixed order: materials, then labor.
func (c Calculation) Breakdown() []BreakdownItem {
	return []BreakdownItem{
		{Label: BreakdownLabelMaterials, Amount: c.MaterialCost},
		{Label: BreakdownLabelLabor, Amount: c.LaborCost},
	}
}
