package neural

import "encoding/json"

// weightsArtifact mirrors the §6.2 JSON weight-artifact schema: two named
// blocks, each a flat row-major weight array in layer order.
type weightsArtifact struct {
	ValueNetwork struct {
		Weights []float64 `json:"weights"`
	} `json:"value_network"`
	PolicyNetwork struct {
		Weights []float64 `json:"weights"`
	} `json:"policy_network"`
}

// LoadWeights parses the §6.2 artifact and decodes both heads. Either head
// failing its element-count or finite-value check fails the whole load,
// per §7's "leave previously-loaded weights intact" contract -- the caller
// must not install a half-decoded pair.
func LoadWeights(data []byte) (*ValueWeights, *PolicyWeights, error) {
	var a weightsArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, nil, ErrWeightsMalformed{Reason: err.Error()}
	}

	value, err := DecodeValueWeights(a.ValueNetwork.Weights)
	if err != nil {
		return nil, nil, err
	}
	policy, err := DecodePolicyWeights(a.PolicyNetwork.Weights)
	if err != nil {
		return nil, nil, err
	}
	return value, policy, nil
}
