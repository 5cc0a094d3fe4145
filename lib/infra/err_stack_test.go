package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	line := strconv.Itoa(initPC.line())
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", "err_stack_test.go"},
		{initPC, "%n", "init"},
		{initPC, "%d", line},
		{initPC, "%v", "err_stack_test.go:" + line},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
	}

	for _, tc := range testcases {
		frameRes := fmt.Sprintf(tc.format, tc.Frame)
		require.Equal(t, tc.want, frameRes)
	}

	full := fmt.Sprintf("%+v", initPC)
	require.True(t, strings.HasPrefix(full, "github.com/benz9527/xlist/lib/infra.init\n\t"))
	require.True(t, strings.HasSuffix(full, "err_stack_test.go:"+line))
}

func TestFrameMarshalText(t *testing.T) {
	_bytes, err := initPC.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(_bytes), "github.com/benz9527/xlist/lib/infra.init "))
	require.True(t, strings.HasSuffix(string(_bytes), "err_stack_test.go:"+strconv.Itoa(initPC.line())))

	_bytes, err = Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(_bytes))
}

var errTest = errors.New("[infra-test] sentinel")

func TestWrapErrorStackWithMessage(t *testing.T) {
	require.Nil(t, WrapErrorStackWithMessage(nil, "nothing"))
	require.Nil(t, WrapErrorStack(nil))

	err := WrapErrorStackWithMessage(errTest, "wrapped")
	require.Error(t, err)
	require.ErrorIs(t, err, errTest)
	require.Equal(t, "wrapped: [infra-test] sentinel", err.Error())

	var es ErrorStack
	require.True(t, errors.As(err, &es))
	require.NotEmpty(t, es.Frames())

	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, "wrapped: [infra-test] sentinel\n"))
	require.Contains(t, verbose, "err_stack_test.go")
}

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("plain")
	require.Equal(t, "plain", err.Error())
	require.Empty(t, err.(ErrorStack).Unwrap())
}

func TestAppendErrorStack(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")

	require.Nil(t, AppendErrorStack(nil))
	require.Equal(t, errA, AppendErrorStack(errA, nil))

	es := WrapErrorStack(errA)
	merged := AppendErrorStack(es, errB)
	require.Same(t, es, merged)
	require.ErrorIs(t, merged, errA)
	require.ErrorIs(t, merged, errB)
	require.Equal(t, "a; b", merged.Error())

	merged = AppendErrorStack(errA, errB)
	require.ErrorIs(t, merged, errA)
	require.ErrorIs(t, merged, errB)
	_, ok := merged.(ErrorStack)
	require.True(t, ok)
}

func TestErrorStackMarshalLogObject(t *testing.T) {
	err := WrapErrorStackWithMessage(errTest, "log me")
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, err.(ErrorStack).MarshalLogObject(enc))
	require.Equal(t, "log me: [infra-test] sentinel", enc.Fields["error"])
	require.Equal(t, []any{"[infra-test] sentinel"}, enc.Fields["errors"])
	frames, ok := enc.Fields["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
}
