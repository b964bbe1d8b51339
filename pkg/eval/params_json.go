package eval

import (
	"encoding/json"
	"fmt"
)

// wireParams mirrors the §6.3 JSON artifact schema. Field names are fixed
// by the spec's field identities; unknown fields are ignored by
// encoding/json's default decode behavior.
type wireParams struct {
	WinScore            *int64   `json:"win_score"`
	LossScore           *int64   `json:"loss_score"`
	CenterColumnValue   *int64   `json:"center_column_value"`
	AdjacentCenterValue *int64   `json:"adjacent_center_value"`
	OuterColumnValue    *int64   `json:"outer_column_value"`
	EdgeColumnValue     *int64   `json:"edge_column_value"`
	RowHeightWeight     *float64 `json:"row_height_weight"`
	CenterControlWeight *float64 `json:"center_control_weight"`
	PieceCountWeight    *float64 `json:"piece_count_weight"`
	ThreatWeight        *float64 `json:"threat_weight"`
	MobilityWeight      *float64 `json:"mobility_weight"`
	VerticalControlWeight   *float64 `json:"vertical_control_weight"`
	HorizontalControlWeight *float64 `json:"horizontal_control_weight"`
	DefensiveWeight         *float64 `json:"defensive_weight"`

	ID         string   `json:"id"`
	ParentIDs  []string `json:"parent_ids"`
	Generation int      `json:"generation"`
}

// ErrParamsMalformed indicates a genetic-parameter artifact missing a
// required weight field or containing invalid JSON.
type ErrParamsMalformed struct {
	Reason string
}

func (e ErrParamsMalformed) Error() string {
	return "malformed genetic parameters: " + e.Reason
}

// DecodeParams parses the §6.3 JSON artifact. All 14 weight fields are
// required; missing or unparseable input returns ErrParamsMalformed. The
// caller (the façade) is responsible for falling back to DefaultParams and
// logging per §7.
func DecodeParams(data []byte) (Params, error) {
	var w wireParams
	if err := json.Unmarshal(data, &w); err != nil {
		return Params{}, ErrParamsMalformed{Reason: err.Error()}
	}

	required := []struct {
		name string
		ok   bool
	}{
		{"win_score", w.WinScore != nil},
		{"loss_score", w.LossScore != nil},
		{"center_column_value", w.CenterColumnValue != nil},
		{"adjacent_center_value", w.AdjacentCenterValue != nil},
		{"outer_column_value", w.OuterColumnValue != nil},
		{"edge_column_value", w.EdgeColumnValue != nil},
		{"row_height_weight", w.RowHeightWeight != nil},
		{"center_control_weight", w.CenterControlWeight != nil},
		{"piece_count_weight", w.PieceCountWeight != nil},
		{"threat_weight", w.ThreatWeight != nil},
		{"mobility_weight", w.MobilityWeight != nil},
		{"vertical_control_weight", w.VerticalControlWeight != nil},
		{"horizontal_control_weight", w.HorizontalControlWeight != nil},
		{"defensive_weight", w.DefensiveWeight != nil},
	}
	for _, r := range required {
		if !r.ok {
			return Params{}, ErrParamsMalformed{Reason: fmt.Sprintf("missing field %q", r.name)}
		}
	}

	return Params{
		WinScore:            *w.WinScore,
		LossScore:           *w.LossScore,
		CenterColumnValue:   *w.CenterColumnValue,
		AdjacentCenterValue: *w.AdjacentCenterValue,
		OuterColumnValue:    *w.OuterColumnValue,
		EdgeColumnValue:     *w.EdgeColumnValue,
		RowHeightWeight:     *w.RowHeightWeight,
		CenterControlWeight: *w.CenterControlWeight,
		PieceCountWeight:    *w.PieceCountWeight,
		ThreatWeight:        *w.ThreatWeight,
		MobilityWeight:      *w.MobilityWeight,
		VerticalControlWeight:   *w.VerticalControlWeight,
		HorizontalControlWeight: *w.HorizontalControlWeight,
		DefensiveWeight:         *w.DefensiveWeight,
		ID:         w.ID,
		ParentIDs:  w.ParentIDs,
		Generation: w.Generation,
	}, nil
}

// Encode serializes Params to the §6.3 JSON artifact format.
func (p Params) Encode() ([]byte, error) {
	w := wireParams{
		WinScore:            &p.WinScore,
		LossScore:           &p.LossScore,
		CenterColumnValue:   &p.CenterColumnValue,
		AdjacentCenterValue: &p.AdjacentCenterValue,
		OuterColumnValue:    &p.OuterColumnValue,
		EdgeColumnValue:     &p.EdgeColumnValue,
		RowHeightWeight:     &p.RowHeightWeight,
		CenterControlWeight: &p.CenterControlWeight,
		PieceCountWeight:    &p.PieceCountWeight,
		ThreatWeight:        &p.ThreatWeight,
		MobilityWeight:      &p.MobilityWeight,
		VerticalControlWeight:   &p.VerticalControlWeight,
		HorizontalControlWeight: &p.HorizontalControlWeight,
		DefensiveWeight:         &p.DefensiveWeight,
		ID:         p.ID,
		ParentIDs:  p.ParentIDs,
		Generation: p.Generation,
	}
	return json.Marshal(w)
}
