package neural

import (
	"github.com/YuminosukeSato/nnet/core/model"
	"github.com/YuminosukeSato/nnet/pkg/errors"
)

// Registered model type keys. The key alone does not identify a variant;
// the registry resolves the compound (key × dimension-count) pair.
const (
	TypeLinear     = "linear"
	TypeLogistic   = "logistic"
	TypeMultiClass = "multiclass"
	TypeMLP        = "mlp"
)

// registryKey は種別名と次元引数の個数の複合キー
// 同じ名前でもアリティが異なれば別のエントリとして扱う
type registryKey struct {
	name  string
	arity int
}

// Registry maps (type name, dimension tuple) pairs to model constructors.
// The table is fixed at construction and read-only afterwards, so a single
// Registry value is safe for concurrent Create and lookup calls.
//
// Per-variant dimension conventions:
//
//	linear     1 dim:  [inputSize]
//	logistic   1 dim:  [inputSize]
//	multiclass 2 dims: [inputSize, numClasses]
//	mlp        3 dims: [inputSize, hiddenSize, outputSize]
type Registry struct {
	builders map[registryKey]func(dims []int) (model.Network, error)
	names    []string
}

// NewRegistry builds a registry with the four fixed model types.
func NewRegistry() *Registry {
	r := &Registry{
		builders: make(map[registryKey]func(dims []int) (model.Network, error)),
		names:    []string{TypeLinear, TypeLogistic, TypeMultiClass, TypeMLP},
	}

	r.builders[registryKey{TypeLinear, 1}] = func(dims []int) (model.Network, error) {
		return NewLinearRegression(dims[0])
	}
	r.builders[registryKey{TypeLogistic, 1}] = func(dims []int) (model.Network, error) {
		return NewLogisticRegression(dims[0])
	}
	r.builders[registryKey{TypeMultiClass, 2}] = func(dims []int) (model.Network, error) {
		return NewMultiClassClassifier(dims[0], dims[1])
	}
	r.builders[registryKey{TypeMLP, 3}] = func(dims []int) (model.Network, error) {
		return NewTwoLayerMLP(dims[0], dims[1], dims[2])
	}

	return r
}

// Create resolves name plus the supplied dimensions to a concrete model
// instance behind the shared interface. The name and the dimension count
// form one compound key: a known name with the wrong number of dimensions
// fails with UnknownModelTypeError, same as an unknown name.
func (r *Registry) Create(name string, dims ...int) (model.Network, error) {
	build, ok := r.builders[registryKey{name: name, arity: len(dims)}]
	if !ok {
		return nil, errors.NewUnknownModelTypeError(name, len(dims))
	}
	return build(dims)
}

// IsRegistered reports whether name matches one of the fixed type keys,
// independent of arity.
func (r *Registry) IsRegistered(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// RegisteredTypes returns the fixed type keys in stable order.
func (r *Registry) RegisteredTypes() []string {
	types := make([]string, len(r.names))
	copy(types, r.names)
	return types
}
