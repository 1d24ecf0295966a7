package mixin_test

import (
	"errors"
	"testing"
	"time"

	"github.com/miruken-go/mixin"
	"github.com/miruken-go/mixin/promise"
	"github.com/stretchr/testify/suite"
)

var errExpected = errors.New("expected error")

// recorder records the implementations called and the args.
type recorder struct {
	calls []string
	args  [][]any
}

func (r *recorder) impl(name string, result any) mixin.Impl {
	return func(args ...any) (any, *promise.Promise[any], error) {
		r.calls = append(r.calls, name)
		r.args = append(r.args, args)
		return result, nil, nil
	}
}

func add(name string, r *recorder, n int) mixin.Impl {
	return func(args ...any) (any, *promise.Promise[any], error) {
		r.calls = append(r.calls, name)
		r.args = append(r.args, args[1:])
		return args[0].(int)*10 + n, nil, nil
	}
}

func later[T any](delay time.Duration, val T) *promise.Promise[any] {
	return promise.New(nil, func(resolve func(any), _ func(error), _ func(func())) {
		time.Sleep(delay)
		resolve(val)
	})
}

type StrategyTestSuite struct {
	suite.Suite
}

func (suite *StrategyTestSuite) TestOverride() {
	suite.Run("CallsLast", func() {
		r := &recorder{}
		out, pout, err := mixin.Override(nil,
			[]mixin.Impl{r.impl("f1", 1), r.impl("f2", 2), r.impl("f3", 3)}, "a", 1)
		suite.NoError(err)
		suite.Nil(pout)
		suite.Equal(3, out)
		suite.Equal([]string{"f3"}, r.calls)
		suite.Equal([][]any{{"a", 1}}, r.args)
	})

	suite.Run("Empty", func() {
		out, pout, err := mixin.Override(nil, nil, "a")
		suite.Nil(out)
		suite.Nil(pout)
		suite.NoError(err)
	})

	suite.Run("LastMissing", func() {
		r := &recorder{}
		out, _, err := mixin.Override(nil, []mixin.Impl{r.impl("f1", 1), r.impl("f2", 2), nil})
		suite.NoError(err)
		suite.Nil(out)
		suite.Empty(r.calls)
	})

	suite.Run("Callable", func() {
		r := &recorder{}
		out, _, err := mixin.Callable(nil, []mixin.Impl{r.impl("f1", 1), r.impl("f2", 2)})
		suite.NoError(err)
		suite.Equal(2, out)
		suite.Equal([]string{"f2"}, r.calls)
	})

	suite.Run("Error", func() {
		_, _, err := mixin.Override(nil, []mixin.Impl{
			func(...any) (any, *promise.Promise[any], error) { return nil, nil, errExpected },
		})
		suite.ErrorIs(err, errExpected)
	})
}

func (suite *StrategyTestSuite) TestParallel() {
	suite.Run("Sync", func() {
		r := &recorder{}
		out, pout, err := mixin.Parallel(nil,
			[]mixin.Impl{r.impl("f1", 1), r.impl("f2", 2), r.impl("f3", 3)}, "a")
		suite.NoError(err)
		suite.Nil(pout)
		suite.Equal([]any{1, 2, 3}, out)
		suite.Equal([]string{"f1", "f2", "f3"}, r.calls)
		suite.Equal([][]any{{"a"}, {"a"}, {"a"}}, r.args)
	})

	suite.Run("Empty", func() {
		out, pout, err := mixin.Parallel(nil, nil)
		suite.NoError(err)
		suite.Nil(pout)
		suite.Equal([]any{}, out)
	})

	suite.Run("Async", func() {
		var started []string
		slow := func(name string, delay time.Duration, val any) mixin.Impl {
			return func(...any) (any, *promise.Promise[any], error) {
				started = append(started, name)
				return nil, later(delay, val), nil
			}
		}
		_, pout, err := mixin.Parallel(nil, []mixin.Impl{
			slow("f1", 30*time.Millisecond, "one"),
			slow("f2", 10*time.Millisecond, "two"),
			func(...any) (any, *promise.Promise[any], error) {
				started = append(started, "f3")
				return "three", nil, nil
			},
		})
		suite.NoError(err)
		suite.Require().NotNil(pout)
		suite.Equal([]string{"f1", "f2", "f3"}, started)
		out, err := pout.Await()
		suite.NoError(err)
		suite.Equal([]any{"one", "two", "three"}, out)
	})

	suite.Run("Rejected", func() {
		_, pout, err := mixin.Parallel(nil, []mixin.Impl{
			func(...any) (any, *promise.Promise[any], error) {
				return nil, later(10*time.Millisecond, 1), nil
			},
			func(...any) (any, *promise.Promise[any], error) {
				return nil, promise.Reject[any](errExpected), nil
			},
		})
		suite.NoError(err)
		suite.Require().NotNil(pout)
		_, err = pout.Await()
		suite.ErrorIs(err, errExpected)
	})

	suite.Run("ErrorStops", func() {
		r := &recorder{}
		_, _, err := mixin.Parallel(nil, []mixin.Impl{
			r.impl("f1", 1),
			func(...any) (any, *promise.Promise[any], error) { return nil, nil, errExpected },
			r.impl("f3", 3),
		})
		suite.ErrorIs(err, errExpected)
		suite.Equal([]string{"f1"}, r.calls)
	})
}

func (suite *StrategyTestSuite) TestPipe() {
	suite.Run("Threads", func() {
		r := &recorder{}
		out, pout, err := mixin.Pipe(nil,
			[]mixin.Impl{add("f1", r, 1), add("f2", r, 2)}, 0, "a", "b")
		suite.NoError(err)
		suite.Nil(pout)
		suite.Equal(12, out)
		suite.Equal([]string{"f1", "f2"}, r.calls)
		suite.Equal([][]any{{"a", "b"}, {"a", "b"}}, r.args)
	})

	suite.Run("Empty", func() {
		out, _, err := mixin.Pipe(nil, nil, 7)
		suite.NoError(err)
		suite.Equal(7, out)
	})

	suite.Run("Suspends", func() {
		var resolved bool
		_, pout, err := mixin.Pipe(nil, []mixin.Impl{
			func(args ...any) (any, *promise.Promise[any], error) {
				return nil, promise.New(nil, func(resolve func(any), _ func(error), _ func(func())) {
					time.Sleep(10 * time.Millisecond)
					resolved = true
					resolve(args[0].(int) + 1)
				}), nil
			},
			func(args ...any) (any, *promise.Promise[any], error) {
				suite.True(resolved)
				return args[0].(int) + 1, nil, nil
			},
		}, 0)
		suite.NoError(err)
		suite.Require().NotNil(pout)
		out, err := pout.Await()
		suite.NoError(err)
		suite.Equal(2, out)
	})

	suite.Run("PendingSeed", func() {
		r := &recorder{}
		_, pout, err := mixin.Pipe(nil, []mixin.Impl{add("f1", r, 1)}, later(5*time.Millisecond, 4))
		suite.NoError(err)
		suite.Require().NotNil(pout)
		out, err := pout.Await()
		suite.NoError(err)
		suite.Equal(41, out)
	})

	suite.Run("RejectionShortCircuits", func() {
		r := &recorder{}
		_, pout, err := mixin.Pipe(nil, []mixin.Impl{
			func(...any) (any, *promise.Promise[any], error) {
				return nil, promise.Reject[any](errExpected), nil
			},
			add("f2", r, 2),
		}, 0)
		suite.NoError(err)
		suite.Require().NotNil(pout)
		_, err = pout.Await()
		suite.ErrorIs(err, errExpected)
		suite.Empty(r.calls)
	})
}

func (suite *StrategyTestSuite) TestCompose() {
	suite.Run("Reverses", func() {
		r := &recorder{}
		impls := []mixin.Impl{add("f1", r, 1), add("f2", r, 2)}
		out, _, err := mixin.Compose(nil, impls, 0, "a")
		suite.NoError(err)
		suite.Equal(21, out)
		suite.Equal([]string{"f2", "f1"}, r.calls)

		r.calls = nil
		out, _, err = mixin.Pipe(nil, impls, 0, "a")
		suite.NoError(err)
		suite.Equal(12, out)
		suite.Equal([]string{"f1", "f2"}, r.calls)
	})
}

func (suite *StrategyTestSuite) TestModes() {
	pending := func(...any) (any, *promise.Promise[any], error) {
		return nil, promise.Resolve[any](nil), nil
	}
	immediate := func(...any) (any, *promise.Promise[any], error) {
		return 5, nil, nil
	}

	suite.Run("Sync", func() {
		for name, strategy := range map[string]mixin.Strategy{
			"Callable": mixin.Sync.Callable,
			"Override": mixin.Sync.Override,
			"Sequence": mixin.Sync.Sequence,
			"Parallel": mixin.Sync.Parallel,
			"Pipe":     mixin.Sync.Pipe,
			"Compose":  mixin.Sync.Compose,
		} {
			_, pout, err := strategy(nil, []mixin.Impl{pending})
			suite.Nil(pout, name)
			suite.ErrorIs(err, mixin.ErrPromiseInSyncMode, name)
			suite.EqualError(err, "got promise in sync mode", name)
		}
	})

	suite.Run("SyncImmediate", func() {
		out, pout, err := mixin.Sync.Override(nil, []mixin.Impl{immediate})
		suite.NoError(err)
		suite.Nil(pout)
		suite.Equal(5, out)
	})

	suite.Run("Async", func() {
		for name, strategy := range map[string]mixin.Strategy{
			"Callable": mixin.Async.Callable,
			"Override": mixin.Async.Override,
			"Parallel": mixin.Async.Parallel,
			"Pipe":     mixin.Async.Pipe,
			"Compose":  mixin.Async.Compose,
		} {
			out, pout, err := strategy(nil, []mixin.Impl{immediate})
			suite.NoError(err, name)
			suite.Nil(out, name)
			suite.NotNil(pout, name)
		}
	})

	suite.Run("AsyncPipe", func() {
		_, pout, err := mixin.Async.Pipe(nil, []mixin.Impl{immediate}, 1)
		suite.NoError(err)
		suite.Require().NotNil(pout)
		out, err := pout.Await()
		suite.NoError(err)
		suite.Equal(5, out)
	})

	suite.Run("AsyncError", func() {
		_, pout, err := mixin.Async.Override(nil, []mixin.Impl{
			func(...any) (any, *promise.Promise[any], error) { return nil, nil, errExpected },
		})
		suite.Nil(pout)
		suite.ErrorIs(err, errExpected)
	})
}

func TestStrategyTestSuite(t *testing.T) {
	suite.Run(t, new(StrategyTestSuite))
}
