package interfaces

// IEventRecorder counts business events (leads captured, calculations stored).
type IEventRecorder interface {
	LeadCreated(serviceType, source string)
	CalculationCreated(serviceType string, totalCost float64)
}
