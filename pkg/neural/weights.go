// Package neural implements the dual-head feed-forward evaluator (C6): a
// value network and a policy network sharing the same hidden geometry,
// loaded from flat weight arrays and evaluated over a fixed feature
// encoding of the board (see features.go).
package neural

import (
	"fmt"
	"math"
)

// FeatureWidth is F, the fixed feature-vector width (see features.go).
const FeatureWidth = 107

// Hidden layer widths of the shared stack, in order.
const (
	hidden1 = 256
	hidden2 = 128
	hidden3 = 64
	hidden4 = 32
)

const (
	valueOutputWidth  = 1
	policyOutputWidth = 7
)

// layerGeometry is one affine layer's input/output width.
type layerGeometry struct{ in, out int }

var hiddenStack = []layerGeometry{
	{FeatureWidth, hidden1},
	{hidden1, hidden2},
	{hidden2, hidden3},
	{hidden3, hidden4},
}

// layer is one affine layer's weights, row-major over inputs: weight from
// input i to output o lives at weights[i*out+o].
type layer struct {
	weights []float64
	bias    []float64
	in, out int
}

// network is the shared hidden stack plus one output layer.
type network struct {
	hidden []layer
	output layer
}

// ErrWeightsMalformed indicates a weight artifact with the wrong element
// count for the declared geometry, or containing a non-finite value.
type ErrWeightsMalformed struct {
	Reason string
}

func (e ErrWeightsMalformed) Error() string {
	return "malformed neural weights: " + e.Reason
}

func expectedElementCount(outWidth int) int {
	n := 0
	in := FeatureWidth
	for _, g := range hiddenStack {
		n += g.in*g.out + g.out
		in = g.out
	}
	return n + in*outWidth + outWidth
}

func buildNetwork(flat []float64, outWidth int) (*network, error) {
	want := expectedElementCount(outWidth)
	if len(flat) != want {
		return nil, ErrWeightsMalformed{Reason: fmt.Sprintf("expected %d elements for F=%d, got %d", want, FeatureWidth, len(flat))}
	}
	for i, v := range flat {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrWeightsMalformed{Reason: fmt.Sprintf("non-finite weight at index %d", i)}
		}
	}

	idx := 0
	hidden := make([]layer, 0, len(hiddenStack))
	for _, g := range hiddenStack {
		var l layer
		l, idx = consumeLayer(flat, idx, g.in, g.out)
		hidden = append(hidden, l)
	}
	out, _ := consumeLayer(flat, idx, hidden4, outWidth)

	return &network{hidden: hidden, output: out}, nil
}

func consumeLayer(flat []float64, idx, in, out int) (layer, int) {
	w := flat[idx : idx+in*out]
	idx += in * out
	b := flat[idx : idx+out]
	idx += out
	return layer{weights: w, bias: b, in: in, out: out}, idx
}

// forwardHidden runs the shared ReLU hidden stack, returning the final hidden
// activation for the output layer to consume.
func (n *network) forwardHidden(features []float64) []float64 {
	x := features
	for _, l := range n.hidden {
		x = reluAffine(l, x)
	}
	return x
}

func affine(l layer, x []float64) []float64 {
	y := make([]float64, l.out)
	for o := 0; o < l.out; o++ {
		sum := l.bias[o]
		for i := 0; i < l.in; i++ {
			sum += l.weights[i*l.out+o] * x[i]
		}
		y[o] = sum
	}
	return y
}

func reluAffine(l layer, x []float64) []float64 {
	y := affine(l, x)
	for i := range y {
		if y[i] < 0 {
			y[i] = 0
		}
	}
	return y
}

// ValueWeights is a loaded value network: F -> [256,128,64,32] -> 1, tanh.
type ValueWeights struct {
	net *network
}

// DecodeValueWeights builds a ValueWeights from a flat, row-major weight
// array per §6.2's element-count contract.
func DecodeValueWeights(flat []float64) (*ValueWeights, error) {
	net, err := buildNetwork(flat, valueOutputWidth)
	if err != nil {
		return nil, err
	}
	return &ValueWeights{net: net}, nil
}

// Forward returns the scalar value estimate in (-1, 1).
func (v *ValueWeights) Forward(features []float64) float64 {
	hidden := v.net.forwardHidden(features)
	out := affine(v.net.output, hidden)
	return math.Tanh(out[0])
}

// PolicyWeights is a loaded policy network: F -> [256,128,64,32] -> 7, softmax.
type PolicyWeights struct {
	net *network
}

// DecodePolicyWeights builds a PolicyWeights from a flat, row-major weight
// array per §6.2's element-count contract.
func DecodePolicyWeights(flat []float64) (*PolicyWeights, error) {
	net, err := buildNetwork(flat, policyOutputWidth)
	if err != nil {
		return nil, err
	}
	return &PolicyWeights{net: net}, nil
}

// Forward returns the 7-column softmax probability distribution.
func (p *PolicyWeights) Forward(features []float64) [7]float64 {
	hidden := p.net.forwardHidden(features)
	out := affine(p.net.output, hidden)
	return softmax(out)
}

func softmax(logits []float64) [7]float64 {
	var result [7]float64
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}
	var sum float64
	var exp [7]float64
	for i, v := range logits {
		exp[i] = math.Exp(v - max)
		sum += exp[i]
	}
	for i := range result {
		result[i] = exp[i] / sum
	}
	return result
}
