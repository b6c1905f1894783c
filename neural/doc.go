// Package neural implements the four feed-forward model variants and the
// registry that constructs them by name.
//
// All variants satisfy model.Network: fixed input/output dimensionality,
// a flat zero-initialized parameter vector replaced wholesale through
// SetParameters, and a pure Forward computation. None of them train;
// parameters come from the caller (typically exported by an external
// training pipeline).
//
//	reg := neural.NewRegistry()
//	m, err := reg.Create("logistic", 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := m.SetParameters([]float64{1.2, -0.8, 0.5}); err != nil {
//	    log.Fatal(err)
//	}
//	out, err := m.Forward([]float64{0.8, -0.3})
package neural
