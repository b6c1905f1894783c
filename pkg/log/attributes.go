// Package log defines standard attribute keys for inference operations.
//
// Using these keys consistently across the demo, dataset, and metrics layers
// keeps the emitted JSON logs filterable by model type, operation, and data
// shape. The keys follow a hierarchical naming convention (e.g. "model.type",
// "data.input_size").

package log

// Model and Operation Context
const (
	// ModelTypeKey identifies the model variant performing the operation.
	// Examples: "Linear Regression", "Two-Layer MLP"
	ModelTypeKey = "model.type"

	// ModelNameKey is the registry key the model was created under.
	// Examples: "linear", "logistic", "multiclass", "mlp"
	ModelNameKey = "model.name"

	// OperationKey specifies the inference operation being performed.
	// Standard values: "create", "set_parameters", "forward", "evaluate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "neural", "dataset", "metrics"
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// InputSizeKey is the model's fixed input dimensionality.
	InputSizeKey = "data.input_size"

	// OutputSizeKey is the model's fixed output dimensionality.
	OutputSizeKey = "data.output_size"

	// ParamCountKey is the length of the model's flat parameter vector.
	ParamCountKey = "data.param_count"

	// CasesKey is the number of test vectors loaded from a file.
	CasesKey = "data.cases"

	// LineKey is the source line number of a test vector.
	LineKey = "data.line"

	// PathKey is the file a dataset was loaded from.
	PathKey = "data.path"
)

// Evaluation Metrics
const (
	// MSEKey is the mean squared error against expected outputs.
	MSEKey = "metric.mse"

	// MaxAbsErrorKey is the largest absolute deviation from expected outputs.
	MaxAbsErrorKey = "metric.max_abs_error"

	// AccuracyKey is the argmax-match rate for classifier outputs.
	AccuracyKey = "metric.accuracy"
)
