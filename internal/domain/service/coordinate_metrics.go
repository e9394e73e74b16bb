package service

// ResolutionOutcome tells how a coordinate was resolved for a new entity.
type ResolutionOutcome string

const (
	ResolutionReusedByID        ResolutionOutcome = "reused_by_id"
	ResolutionReusedByProximity ResolutionOutcome = "reused_by_proximity"
	ResolutionInserted          ResolutionOutcome = "inserted"
)

// CoordinateMetrics records coordinate deduplication outcomes.
type CoordinateMetrics interface {
	CoordinateResolved(outcome ResolutionOutcome)
}
