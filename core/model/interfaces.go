// Package model defines the capability set shared by all nnet model variants.
// The interfaces here are what the registry returns and what callers program
// against; concrete implementations live in the neural package.
package model

import "fmt"

// Forwarder は順伝播計算が可能なモデルのインターフェース
type Forwarder interface {
	// Forward は入力ベクトルから出力ベクトルを計算する。
	// 入力長がInputSize()と一致しない場合はDimensionErrorを返す。
	Forward(input []float64) ([]float64, error)
}

// Parameterized はフラットなパラメータベクトルを受け取るモデルのインターフェース
type Parameterized interface {
	// SetParameters はパラメータ格納領域全体を置き換える。
	// 長さがNumParameters()と一致しない場合はDimensionErrorを返し、
	// その際に部分的な書き込みは一切行わない。
	SetParameters(params []float64) error

	// NumParameters は期待されるパラメータベクトルの長さを返す。
	NumParameters() int
}

// Network is the full capability set every model variant satisfies.
// Input and output dimensionality are fixed at construction time; the
// parameter vector is zero-initialized until SetParameters is called.
type Network interface {
	Forwarder
	Parameterized

	// InputSize returns the fixed input dimensionality.
	InputSize() int

	// OutputSize returns the fixed output dimensionality.
	OutputSize() int

	// ModelType returns a human-readable label for the variant.
	ModelType() string
}

// Summary formats a one-line human-readable description of a network,
// suitable for demo and CLI output.
func Summary(n Network) string {
	return fmt.Sprintf("Model: %s (Input: %d, Output: %d)", n.ModelType(), n.InputSize(), n.OutputSize())
}
