// Package metrics provides small evaluation helpers for comparing model
// outputs against expected output vectors.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/nnet/pkg/errors"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(expected, predicted []float64) (float64, error) {
	n := len(expected)
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if len(predicted) != n {
		return 0, errors.NewDimensionError("MSE", n, len(predicted), "input")
	}

	// MSE = (1/n) * Σ(expected - predicted)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := expected[i] - predicted[i]
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(expected, predicted []float64) (float64, error) {
	mse, err := MSE(expected, predicted)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MaxAbsError は要素ごとの絶対誤差の最大値を計算する
func MaxAbsError(expected, predicted []float64) (float64, error) {
	n := len(expected)
	if n == 0 {
		return 0, errors.NewValueError("MaxAbsError", "empty vector")
	}
	if len(predicted) != n {
		return 0, errors.NewDimensionError("MaxAbsError", n, len(predicted), "input")
	}

	var maxErr float64
	for i := 0; i < n; i++ {
		if d := math.Abs(expected[i] - predicted[i]); d > maxErr {
			maxErr = d
		}
	}
	return maxErr, nil
}

// ArgMax は最大値を持つインデックスを返す。分類器の出力分布から
// 予測クラスを取り出すために使う。空のスライスには-1を返す。
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	return floats.MaxIdx(v)
}

// Accuracy は分類器出力のArgMaxが期待分布のArgMaxと一致する割合を計算する
func Accuracy(expected, predicted [][]float64) (float64, error) {
	n := len(expected)
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty output set")
	}
	if len(predicted) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(predicted), "input")
	}

	correct := 0
	for i := 0; i < n; i++ {
		if ArgMax(predicted[i]) == ArgMax(expected[i]) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}
