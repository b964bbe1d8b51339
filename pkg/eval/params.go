package eval

// Params is a frozen bundle of evaluation weights, consumed by Evaluate.
// The ID/ParentIDs/Generation fields are opaque identity metadata: the
// evaluator never reads them, it only exists so the façade can round-trip
// them through persistence on the host's behalf.
type Params struct {
	WinScore            int64
	LossScore           int64
	CenterColumnValue   int64
	AdjacentCenterValue int64
	OuterColumnValue    int64
	EdgeColumnValue     int64
	RowHeightWeight     float64
	CenterControlWeight float64
	PieceCountWeight    float64
	ThreatWeight        float64
	MobilityWeight      float64
	VerticalControlWeight   float64
	HorizontalControlWeight float64
	DefensiveWeight         float64

	ID         string
	ParentIDs  []string
	Generation int
}

// DefaultParams returns the §4.2 calibration values. Used whenever no
// artifact is loaded, or the loaded artifact is malformed.
func DefaultParams() Params {
	return Params{
		WinScore:            10000,
		LossScore:           -10000,
		CenterColumnValue:   165,
		AdjacentCenterValue: 97,
		OuterColumnValue:    17,
		EdgeColumnValue:     6,
		RowHeightWeight:     1.798,
		CenterControlWeight: 2.022,
		PieceCountWeight:    0.965,
		ThreatWeight:        1.588,
		MobilityWeight:      1.453,
		VerticalControlWeight:   2.862,
		HorizontalControlWeight: 1.344,
		DefensiveWeight:         1.372,

		ID:         "default",
		ParentIDs:  nil,
		Generation: 0,
	}
}

// columnValue returns the positional weight for a column, by distance from
// the center column (3): center, adjacent-center, outer, or edge.
func (p Params) columnValue(col int) int64 {
	switch col {
	case 3:
		return p.CenterColumnValue
	case 2, 4:
		return p.AdjacentCenterValue
	case 1, 5:
		return p.OuterColumnValue
	default: // 0, 6
		return p.EdgeColumnValue
	}
}
