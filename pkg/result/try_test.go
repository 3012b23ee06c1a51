package result

import (
	"errors"
	"io/fs"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type temporary interface {
	error
	Temporary() bool
}

type flakyError struct{}

func (flakyError) Error() string   { return "flaky" }
func (flakyError) Temporary() bool { return true }

func TestTryOr_Success(t *testing.T) {
	t.Parallel()

	r := TryOr[string, *fs.PathError](func() (string, error) { return "data", nil })
	require.Equal(t, Ok[string, *fs.PathError]("data"), r)
}

func TestTryOr_CaughtFailure(t *testing.T) {
	t.Parallel()

	disk := &fs.PathError{Op: "read", Path: "disk", Err: fs.ErrClosed}
	r := TryOr[string, *fs.PathError](func() (string, error) { return "", disk })

	require.True(t, r.IsErr())
	require.Same(t, disk, r.UnwrapErr())
}

func TestTryOr_NarrowsToInterface(t *testing.T) {
	t.Parallel()

	r := TryOr[int, temporary](func() (int, error) { return 0, flakyError{} })
	require.True(t, r.UnwrapErr().Temporary())
}

func TestTryOr_NarrowingError(t *testing.T) {
	t.Parallel()

	runtime := errors.New("runtime failure")

	v := recovered(func() {
		TryOr[string, *fs.PathError](func() (string, error) { return "", runtime })
	})

	mismatch, ok := v.(*ErrorTypeMismatchError)
	require.True(t, ok, "expected *ErrorTypeMismatchError, got %T", v)
	require.Equal(t, reflect.TypeFor[*fs.PathError](), mismatch.Expected)
	require.Same(t, runtime, mismatch.Actual)
	require.ErrorIs(t, mismatch, runtime)
	require.Contains(t, mismatch.Error(), "*fs.PathError")
	require.Contains(t, mismatch.Error(), "*errors.errorString")
}

func TestTryOr_WrappedErrorIsNotSearched(t *testing.T) {
	t.Parallel()

	_, numErr := strconv.Atoi("x")
	wrapped := errors.Join(numErr)

	v := recovered(func() {
		TryOr[int, *strconv.NumError](func() (int, error) { return 0, wrapped })
	})

	var mismatch *ErrorTypeMismatchError
	require.ErrorAs(t, v.(error), &mismatch)
	var ne *strconv.NumError
	require.ErrorAs(t, mismatch, &ne)
}

func TestTryOr_ThunkPanicsPropagate(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "boom", func() {
		TryOr[int, error](func() (int, error) { panic("boom") })
	})
}

func TestTryOr_MismatchIsNotCaughtByOuterTryOr(t *testing.T) {
	t.Parallel()

	inner := func() (int, error) {
		r := TryOr[int, *fs.PathError](func() (int, error) { return 0, errors.New("other") })
		return r.Unwrap(), nil
	}

	v := recovered(func() { TryOr[int, error](inner) })
	require.IsType(t, &ErrorTypeMismatchError{}, v)
}

func TestTry(t *testing.T) {
	t.Parallel()

	require.Equal(t, Ok[int, error](12), Try[int](func() (int, error) { return strconv.Atoi("12") }))

	r := Try[int](func() (int, error) { return strconv.Atoi("twelve") })
	require.True(t, r.IsErr())
	require.IsType(t, &strconv.NumError{}, r.UnwrapErr())
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	require.Equal(t, Ok[int, error](1), FromPair[int](strconv.Atoi("1")))

	boom := errors.New("boom")
	require.Equal(t, Err[int, error](boom), FromPair(0, boom))
}
