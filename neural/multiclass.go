package neural

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nnet/pkg/errors"
)

// MultiClassClassifier はソフトマックス出力の多クラス分類モデル
// クラスごとにロジットを線形結合で計算し、ソフトマックスで
// 確率分布（非負・総和1）に正規化する
type MultiClassClassifier struct {
	weights    *mat.Dense    // numClasses × inputSize
	biases     *mat.VecDense // クラスごとのバイアス
	inputSize  int
	numClasses int
}

// NewMultiClassClassifier は指定した入力次元数とクラス数の分類モデルを作成する。
// パラメータはゼロ初期化される。
func NewMultiClassClassifier(inputSize, numClasses int) (*MultiClassClassifier, error) {
	if inputSize <= 0 {
		return nil, errors.NewValidationError("inputSize", "must be a positive integer", inputSize)
	}
	if numClasses <= 0 {
		return nil, errors.NewValidationError("numClasses", "must be a positive integer", numClasses)
	}
	return &MultiClassClassifier{
		weights:    mat.NewDense(numClasses, inputSize, nil),
		biases:     mat.NewVecDense(numClasses, nil),
		inputSize:  inputSize,
		numClasses: numClasses,
	}, nil
}

// Forward はクラスごとのロジットを計算し、ソフトマックスを適用する。
// 最大ロジットの減算は指数関数のオーバーフロー防止に必須の処理。
func (mc *MultiClassClassifier) Forward(input []float64) ([]float64, error) {
	if len(input) != mc.inputSize {
		return nil, errors.NewDimensionError("MultiClassClassifier.Forward", mc.inputSize, len(input), "input")
	}

	x := mat.NewVecDense(mc.inputSize, input)
	logits := make([]float64, mc.numClasses)
	for c := 0; c < mc.numClasses; c++ {
		logits[c] = mat.Dot(mc.weights.RowView(c), x) + mc.biases.AtVec(c)
	}

	softmaxInPlace(logits)
	return logits, nil
}

// SetParameters はクラス単位のレイアウト
// [w_{0,0} .. w_{0,n-1}, b_0, w_{1,0} .. w_{1,n-1}, b_1, ...]
// でパラメータを読み込む。長さが一致しない場合は何も書き換えずに
// DimensionErrorを返す。
func (mc *MultiClassClassifier) SetParameters(params []float64) error {
	if len(params) != mc.NumParameters() {
		return errors.NewDimensionError("MultiClassClassifier.SetParameters", mc.NumParameters(), len(params), "parameters")
	}

	stride := mc.inputSize + 1
	for c := 0; c < mc.numClasses; c++ {
		row := params[c*stride : c*stride+mc.inputSize]
		mc.weights.SetRow(c, row) // SetRowは内部バッファへコピーする
		mc.biases.SetVec(c, params[c*stride+mc.inputSize])
	}
	return nil
}

// NumParameters は期待されるパラメータ数 numClasses × (inputSize + 1) を返す
func (mc *MultiClassClassifier) NumParameters() int {
	return mc.numClasses * (mc.inputSize + 1)
}

// InputSize は入力次元数を返す
func (mc *MultiClassClassifier) InputSize() int {
	return mc.inputSize
}

// OutputSize は出力次元数（クラス数）を返す
func (mc *MultiClassClassifier) OutputSize() int {
	return mc.numClasses
}

// ModelType はクラス数を含むモデル種別のラベルを返す
func (mc *MultiClassClassifier) ModelType() string {
	return fmt.Sprintf("Multi-Class Classifier (%d classes)", mc.numClasses)
}
