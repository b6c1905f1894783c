package neural

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nnet/pkg/errors"
)

// LogisticRegression はロジスティック回帰の順伝播モデル
// 線形結合にシグモイド関数を適用し、(0,1)の確率値を出力する
type LogisticRegression struct {
	weights   *mat.VecDense
	bias      float64
	inputSize int
}

// NewLogisticRegression は指定した入力次元数のロジスティック回帰モデルを作成する。
// パラメータはゼロ初期化される。
func NewLogisticRegression(inputSize int) (*LogisticRegression, error) {
	if inputSize <= 0 {
		return nil, errors.NewValidationError("inputSize", "must be a positive integer", inputSize)
	}
	return &LogisticRegression{
		weights:   mat.NewVecDense(inputSize, nil),
		inputSize: inputSize,
	}, nil
}

// Forward は output = sigmoid(Σ(w_i × x_i) + b) を計算する。
// 入力のクランプは行わない（有限入力に対して出力は厳密に(0,1)の範囲）。
func (lr *LogisticRegression) Forward(input []float64) ([]float64, error) {
	if len(input) != lr.inputSize {
		return nil, errors.NewDimensionError("LogisticRegression.Forward", lr.inputSize, len(input), "input")
	}

	z := mat.Dot(mat.NewVecDense(lr.inputSize, input), lr.weights) + lr.bias
	return []float64{sigmoid(z)}, nil
}

// SetParameters はパラメータベクトル [w_0 .. w_{n-1}, b] を読み込む。
// 長さが一致しない場合は何も書き換えずにDimensionErrorを返す。
func (lr *LogisticRegression) SetParameters(params []float64) error {
	if len(params) != lr.NumParameters() {
		return errors.NewDimensionError("LogisticRegression.SetParameters", lr.NumParameters(), len(params), "parameters")
	}

	lr.weights.CopyVec(mat.NewVecDense(lr.inputSize, params[:lr.inputSize]))
	lr.bias = params[lr.inputSize]
	return nil
}

// NumParameters は期待されるパラメータ数（重みn個 + バイアス1個）を返す
func (lr *LogisticRegression) NumParameters() int {
	return lr.inputSize + 1
}

// InputSize は入力次元数を返す
func (lr *LogisticRegression) InputSize() int {
	return lr.inputSize
}

// OutputSize は出力次元数（常に1）を返す
func (lr *LogisticRegression) OutputSize() int {
	return 1
}

// ModelType はモデル種別のラベルを返す
func (lr *LogisticRegression) ModelType() string {
	return "Logistic Regression"
}
