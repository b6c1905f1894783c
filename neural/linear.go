package neural

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nnet/pkg/errors"
)

// LinearRegression は線形回帰の順伝播モデル
// 出力は重みと入力の内積にバイアスを加えたスカラー（活性化なし）
type LinearRegression struct {
	weights   *mat.VecDense // 重み（係数）
	bias      float64       // 切片
	inputSize int           // 入力次元数
}

// NewLinearRegression は指定した入力次元数の線形回帰モデルを作成する。
// パラメータはゼロ初期化される。
func NewLinearRegression(inputSize int) (*LinearRegression, error) {
	if inputSize <= 0 {
		return nil, errors.NewValidationError("inputSize", "must be a positive integer", inputSize)
	}
	return &LinearRegression{
		weights:   mat.NewVecDense(inputSize, nil),
		inputSize: inputSize,
	}, nil
}

// Forward は output = Σ(w_i × x_i) + b を計算する
func (lr *LinearRegression) Forward(input []float64) ([]float64, error) {
	if len(input) != lr.inputSize {
		return nil, errors.NewDimensionError("LinearRegression.Forward", lr.inputSize, len(input), "input")
	}

	out := mat.Dot(mat.NewVecDense(lr.inputSize, input), lr.weights) + lr.bias
	return []float64{out}, nil
}

// SetParameters はパラメータベクトル [w_0 .. w_{n-1}, b] を読み込む。
// 長さが一致しない場合は何も書き換えずにDimensionErrorを返す。
func (lr *LinearRegression) SetParameters(params []float64) error {
	if len(params) != lr.NumParameters() {
		return errors.NewDimensionError("LinearRegression.SetParameters", lr.NumParameters(), len(params), "parameters")
	}

	// 排他所有のため呼び出し側のスライスはコピーする
	lr.weights.CopyVec(mat.NewVecDense(lr.inputSize, params[:lr.inputSize]))
	lr.bias = params[lr.inputSize]
	return nil
}

// NumParameters は期待されるパラメータ数（重みn個 + バイアス1個）を返す
func (lr *LinearRegression) NumParameters() int {
	return lr.inputSize + 1
}

// InputSize は入力次元数を返す
func (lr *LinearRegression) InputSize() int {
	return lr.inputSize
}

// OutputSize は出力次元数（常に1）を返す
func (lr *LinearRegression) OutputSize() int {
	return 1
}

// ModelType はモデル種別のラベルを返す
func (lr *LinearRegression) ModelType() string {
	return "Linear Regression"
}
