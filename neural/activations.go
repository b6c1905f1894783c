package neural

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// sigmoid computes the logistic sigmoid function
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// relu computes max(0, x)
func relu(x float64) float64 {
	return math.Max(0, x)
}

// softmaxInPlace はロジットの列を確率分布に正規化する。
// 指数関数のオーバーフローを避けるため、最大ロジットを引いてから
// 指数化する（数値安定性のための必須処理）。
func softmaxInPlace(logits []float64) {
	maxLogit := floats.Max(logits)
	for i, z := range logits {
		logits[i] = math.Exp(z - maxLogit)
	}
	sum := floats.Sum(logits)
	floats.Scale(1/sum, logits)
}
