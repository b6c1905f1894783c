// Package nnet provides a minimal polymorphic inference library for
// feed-forward numeric models: linear regression, logistic regression,
// multi-class softmax classification, and a two-layer perceptron.
//
// All variants share one capability set (model.Network): fixed input and
// output dimensionality, a flat parameter vector loaded wholesale, and a
// pure forward computation. A registry constructs variants by name and
// dimension tuple, so callers can drive any model through the same code.
//
// nnet does no training. Parameters are produced elsewhere (typically a
// Python training pipeline) and loaded as flat vectors.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/nnet/neural"
//	)
//
//	func main() {
//	    reg := neural.NewRegistry()
//
//	    m, err := reg.Create("linear", 3)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := m.SetParameters([]float64{0.5, 0.3, 0.2, 0.1}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := m.Forward([]float64{1.5, -0.5, 2.0})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Output:", out)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - core/model: the shared Network interface and metadata helpers
//   - neural: the four model variants and the registry/factory
//   - dataset: line-oriented test-vector file loading
//   - metrics: evaluation helpers (MSE, max absolute error, accuracy)
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging setup for the collaborator layers
package nnet
