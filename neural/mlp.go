package neural

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nnet/pkg/errors"
)

// TwoLayerMLP は2層パーセプトロンの順伝播モデル
// 隠れ層はReLU活性化、出力層は恒等写像（活性化なし）
type TwoLayerMLP struct {
	w1 *mat.Dense    // inputSize × hiddenSize（フラット順: i·hidden + j）
	b1 *mat.VecDense // 隠れ層バイアス
	w2 *mat.Dense    // hiddenSize × outputSize（フラット順: j·output + o）
	b2 *mat.VecDense // 出力層バイアス

	inputSize  int
	hiddenSize int
	outputSize int
}

// NewTwoLayerMLP は指定した各層の次元数のMLPを作成する。
// パラメータはゼロ初期化される。
func NewTwoLayerMLP(inputSize, hiddenSize, outputSize int) (*TwoLayerMLP, error) {
	if inputSize <= 0 {
		return nil, errors.NewValidationError("inputSize", "must be a positive integer", inputSize)
	}
	if hiddenSize <= 0 {
		return nil, errors.NewValidationError("hiddenSize", "must be a positive integer", hiddenSize)
	}
	if outputSize <= 0 {
		return nil, errors.NewValidationError("outputSize", "must be a positive integer", outputSize)
	}
	return &TwoLayerMLP{
		w1:         mat.NewDense(inputSize, hiddenSize, nil),
		b1:         mat.NewVecDense(hiddenSize, nil),
		w2:         mat.NewDense(hiddenSize, outputSize, nil),
		b2:         mat.NewVecDense(outputSize, nil),
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		outputSize: outputSize,
	}, nil
}

// Forward は hidden = ReLU(W1ᵀx + b1)、output = W2ᵀhidden + b2 を計算する
func (m *TwoLayerMLP) Forward(input []float64) ([]float64, error) {
	if len(input) != m.inputSize {
		return nil, errors.NewDimensionError("TwoLayerMLP.Forward", m.inputSize, len(input), "input")
	}

	x := mat.NewVecDense(m.inputSize, input)

	hidden := mat.NewVecDense(m.hiddenSize, nil)
	hidden.MulVec(m.w1.T(), x)
	hidden.AddVec(hidden, m.b1)
	for j := 0; j < m.hiddenSize; j++ {
		hidden.SetVec(j, relu(hidden.AtVec(j)))
	}

	out := mat.NewVecDense(m.outputSize, nil)
	out.MulVec(m.w2.T(), hidden)
	out.AddVec(out, m.b2)

	result := make([]float64, m.outputSize)
	copy(result, out.RawVector().Data)
	return result, nil
}

// SetParameters は [W1, b1, W2, b2] の順で連結されたフラットな
// パラメータベクトルを読み込む。W1は入力メジャー（i·hidden + j）、
// W2は隠れメジャー（j·output + o）のフラット順。
// 長さが一致しない場合は何も書き換えずにDimensionErrorを返す。
func (m *TwoLayerMLP) SetParameters(params []float64) error {
	if len(params) != m.NumParameters() {
		return errors.NewDimensionError("TwoLayerMLP.SetParameters", m.NumParameters(), len(params), "parameters")
	}

	idx := 0
	next := func(n int) []float64 {
		s := params[idx : idx+n]
		idx += n
		return s
	}

	// NewDenseの行メジャー格納はフラット順の仕様とそのまま一致する
	copy(m.w1.RawMatrix().Data, next(m.inputSize*m.hiddenSize))
	copy(m.b1.RawVector().Data, next(m.hiddenSize))
	copy(m.w2.RawMatrix().Data, next(m.hiddenSize*m.outputSize))
	copy(m.b2.RawVector().Data, next(m.outputSize))
	return nil
}

// NumParameters は期待されるパラメータ数
// input·hidden + hidden + hidden·output + output を返す
func (m *TwoLayerMLP) NumParameters() int {
	return m.inputSize*m.hiddenSize + m.hiddenSize + m.hiddenSize*m.outputSize + m.outputSize
}

// InputSize は入力次元数を返す
func (m *TwoLayerMLP) InputSize() int {
	return m.inputSize
}

// OutputSize は出力次元数を返す
func (m *TwoLayerMLP) OutputSize() int {
	return m.outputSize
}

// ModelType はモデル種別のラベルを返す
func (m *TwoLayerMLP) ModelType() string {
	return "Two-Layer MLP"
}
