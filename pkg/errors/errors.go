// Package errors はプロジェクト全体のエラーハンドリングを提供します。
// 推論ライブラリの契約違反（次元不一致・未知のモデル種別）を構造化された
// エラー型として表現し、cockroachdb/errorsによるスタックトレースを付与します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DimensionError は入力ベクトルまたはパラメータベクトルの長さが
// 期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Kind     string // "input" or "parameters"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("nnet: %s: %s size mismatch. Expected %d, got %d", e.Op, e.Kind, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("kind", e.Kind).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got int, kind string) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Kind: kind}
	return errors.WithStack(err)
}

// UnknownModelTypeError はファクトリが認識できないモデル種別を要求された
// 場合のエラーです。種別名と次元数（アリティ）は複合キーとして扱われるため、
// 名前自体は登録済みでもアリティが合わなければこのエラーになります。
type UnknownModelTypeError struct {
	Name  string
	Arity int
}

func (e *UnknownModelTypeError) Error() string {
	return fmt.Sprintf("nnet: unknown model type %q for %d dimension argument(s)", e.Name, e.Arity)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnknownModelTypeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_type", e.Name).
		Int("arity", e.Arity).
		Str("type", "UnknownModelTypeError")
}

// NewUnknownModelTypeError は新しいUnknownModelTypeErrorを作成し、
// スタックトレースを付与します。
func NewUnknownModelTypeError(name string, arity int) error {
	err := &UnknownModelTypeError{Name: name, Arity: arity}
	return errors.WithStack(err)
}

// ValidationError は構築時のパラメータ検証に失敗した場合のエラーです。
// 例えば、負の入力次元数を指定した場合など。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("nnet: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、テストベクタファイルの行が数値として解釈できない場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("nnet: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
