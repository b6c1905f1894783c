package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/nnet/dataset"
	"github.com/YuminosukeSato/nnet/metrics"
	"github.com/YuminosukeSato/nnet/neural"
)

func TestLoadReader(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"",
		"1.0,2.0 | 0.5,0.5,0.0 | 1.5",
		"   ",
		"0.0,0.0 | 1.0,1.0,0.25 | 0.25",
	}, "\n")

	cases, err := dataset.LoadReader(strings.NewReader(input), "inline")
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, []float64{1.0, 2.0}, cases[0].Input)
	assert.Equal(t, []float64{0.5, 0.5, 0.0}, cases[0].Params)
	assert.Equal(t, []float64{1.5}, cases[0].Expected)
	assert.Equal(t, 3, cases[0].Line)
	assert.Equal(t, 5, cases[1].Line)
}

func TestLoadReader_SkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"1.0 | 0.5,0.0 | 0.5",
		"not,a | float | vector",
		"missing delimiter",
		"2.0 | 0.5,0.0 | 1.0",
	}, "\n")

	cases, err := dataset.LoadReader(strings.NewReader(input), "inline")
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, 1, cases[0].Line)
	assert.Equal(t, 4, cases[1].Line)
}

func TestLoadReader_EmptyInputIsNotAnError(t *testing.T) {
	cases, err := dataset.LoadReader(strings.NewReader("# only comments\n"), "inline")
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load("testdata/does_not_exist.txt")
	require.Error(t, err)
}

// 同梱のテストベクタを各モデル種別で実行し、期待出力との一致を確認する
func TestLoad_ShippedVectors(t *testing.T) {
	reg := neural.NewRegistry()

	tests := []struct {
		name     string
		path     string
		typeName string
		dims     []int
		tol      float64
	}{
		{"linear", "testdata/linear_regression.txt", neural.TypeLinear, []int{3}, 1e-4},
		{"logistic", "testdata/logistic_regression.txt", neural.TypeLogistic, []int{2}, 1e-4},
		{"multiclass", "testdata/multi_class.txt", neural.TypeMultiClass, []int{2, 3}, 1e-4},
		{"mlp", "testdata/two_layer_mlp.txt", neural.TypeMLP, []int{2, 3, 2}, 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases, err := dataset.Load(tt.path)
			require.NoError(t, err)
			require.NotEmpty(t, cases)

			m, err := reg.Create(tt.typeName, tt.dims...)
			require.NoError(t, err)

			for _, c := range cases {
				require.NoError(t, m.SetParameters(c.Params), "line %d", c.Line)

				out, err := m.Forward(c.Input)
				require.NoError(t, err, "line %d", c.Line)
				require.Len(t, out, m.OutputSize(), "line %d", c.Line)

				maxErr, err := metrics.MaxAbsError(c.Expected, out)
				require.NoError(t, err, "line %d", c.Line)
				assert.LessOrEqual(t, maxErr, tt.tol, "line %d: got %v want %v", c.Line, out, c.Expected)
			}
		})
	}
}
