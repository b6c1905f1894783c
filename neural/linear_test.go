package neural

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/nnet/core/model"
	"github.com/YuminosukeSato/nnet/pkg/errors"
)

// コンパイル時のインターフェース実装確認
var (
	_ model.Network = (*LinearRegression)(nil)
	_ model.Network = (*LogisticRegression)(nil)
	_ model.Network = (*MultiClassClassifier)(nil)
	_ model.Network = (*TwoLayerMLP)(nil)
)

func TestLinearRegression_Forward(t *testing.T) {
	lr, err := NewLinearRegression(3)
	if err != nil {
		t.Fatalf("NewLinearRegression failed: %v", err)
	}

	if lr.InputSize() != 3 {
		t.Errorf("InputSize() = %d, want 3", lr.InputSize())
	}
	if lr.OutputSize() != 1 {
		t.Errorf("OutputSize() = %d, want 1", lr.OutputSize())
	}
	if lr.NumParameters() != 4 {
		t.Errorf("NumParameters() = %d, want 4", lr.NumParameters())
	}
	if lr.ModelType() != "Linear Regression" {
		t.Errorf("ModelType() = %q, want %q", lr.ModelType(), "Linear Regression")
	}

	// w = [0.5, 0.3, 0.2], b = 0.1
	if err := lr.SetParameters([]float64{0.5, 0.3, 0.2, 0.1}); err != nil {
		t.Fatalf("SetParameters failed: %v", err)
	}

	out, err := lr.Forward([]float64{1.5, -0.5, 2.0})
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("Forward returned %d outputs, want 1", len(out))
	}

	// 0.75 - 0.15 + 0.40 + 0.1 = 1.1
	if math.Abs(out[0]-1.1) > 1e-6 {
		t.Errorf("Forward() = %v, want 1.1", out[0])
	}
}

func TestLinearRegression_ZeroInitialized(t *testing.T) {
	lr, err := NewLinearRegression(2)
	if err != nil {
		t.Fatalf("NewLinearRegression failed: %v", err)
	}

	// パラメータ未設定でもForwardは呼べる（ゼロ初期化）
	out, err := lr.Forward([]float64{3.0, -7.0})
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if out[0] != 0 {
		t.Errorf("zero-initialized Forward() = %v, want 0", out[0])
	}
}

func TestLinearRegression_DimensionMismatch(t *testing.T) {
	lr, err := NewLinearRegression(3)
	if err != nil {
		t.Fatalf("NewLinearRegression failed: %v", err)
	}
	if err := lr.SetParameters([]float64{0.5, 0.3, 0.2, 0.1}); err != nil {
		t.Fatalf("SetParameters failed: %v", err)
	}

	// 入力長の不一致
	if _, err := lr.Forward([]float64{1.0, 2.0}); err == nil {
		t.Error("Forward with wrong input length should fail")
	} else {
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("expected DimensionError, got %T: %v", err, err)
		}
	}

	// パラメータ長の不一致は既存パラメータに影響しない
	if err := lr.SetParameters([]float64{9.9, 9.9}); err == nil {
		t.Error("SetParameters with wrong length should fail")
	}
	out, err := lr.Forward([]float64{1.5, -0.5, 2.0})
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if math.Abs(out[0]-1.1) > 1e-6 {
		t.Errorf("previous parameters should remain effective, got %v", out[0])
	}
}

func TestLinearRegression_ForwardIsIdempotent(t *testing.T) {
	lr, err := NewLinearRegression(2)
	if err != nil {
		t.Fatalf("NewLinearRegression failed: %v", err)
	}
	if err := lr.SetParameters([]float64{1.0, -2.0, 0.5}); err != nil {
		t.Fatalf("SetParameters failed: %v", err)
	}

	input := []float64{0.3, 0.7}
	first, err := lr.Forward(input)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	second, err := lr.Forward(input)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if first[0] != second[0] {
		t.Errorf("repeated Forward differs: %v vs %v", first[0], second[0])
	}
}

func TestLinearRegression_OwnsParameterStorage(t *testing.T) {
	lr, err := NewLinearRegression(2)
	if err != nil {
		t.Fatalf("NewLinearRegression failed: %v", err)
	}

	params := []float64{1.0, 1.0, 0.0}
	if err := lr.SetParameters(params); err != nil {
		t.Fatalf("SetParameters failed: %v", err)
	}

	// 呼び出し側スライスの書き換えはモデルに影響しない
	params[0] = 100.0
	out, err := lr.Forward([]float64{1.0, 1.0})
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if math.Abs(out[0]-2.0) > 1e-9 {
		t.Errorf("Forward() = %v, want 2.0 (caller mutation leaked in)", out[0])
	}
}

func TestNewLinearRegression_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewLinearRegression(size); err == nil {
			t.Errorf("NewLinearRegression(%d) should fail", size)
		} else {
			var valErr *errors.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("expected ValidationError, got %T: %v", err, err)
			}
		}
	}
}
