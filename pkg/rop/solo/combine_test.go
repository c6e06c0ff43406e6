package solo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/rop"
)

func TestCombine_TwoSuccesses(t *testing.T) {
	t.Parallel()
	out := Combine(rop.Success(1), rop.Success("a"))

	assert.True(t, rop.Equal(rop.Success(rop.PairOf(1, "a")), out))
}

func TestCombine_LoneFailure(t *testing.T) {
	t.Parallel()
	err := rop.NotFound("x")

	left := Combine(rop.Success(1), rop.Fail[string](err))
	right := Combine(rop.Fail[string](err), rop.Success(1))

	assert.Same(t, err, left.Err())
	assert.Same(t, err, right.Err())
}

func TestCombine_DoubleValidationMerge(t *testing.T) {
	t.Parallel()
	out := Combine(
		rop.Fail[int](rop.Validation("x", "f1")),
		rop.Fail[int](rop.Validation("y", "f2")))

	v, ok := out.Err().(*rop.ValidationError)
	require.True(t, ok)
	fields := v.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "f1", fields[0].Field)
	assert.Equal(t, "f2", fields[1].Field)
}

func TestCombine_MixedFailureAggregate(t *testing.T) {
	t.Parallel()
	nf := rop.NotFound("user")
	v := rop.Validation("bad", "email")

	out := Combine(rop.Fail[int](nf), rop.Fail[int](v))

	agg, ok := out.Err().(*rop.AggregateError)
	require.True(t, ok)
	require.Equal(t, 2, agg.Len())
	assert.Same(t, nf, agg.Errors()[0])
	assert.Same(t, v, agg.Errors()[1])
}

// Repeated identical failures stay separate members.
func TestCombine_AggregateKeepsDuplicates(t *testing.T) {
	t.Parallel()
	nf := rop.NotFound("same")

	out := Combine(Combine(rop.Fail[int](nf), rop.Fail[int](nf)), rop.Fail[int](nf))

	assert.Equal(t, 3, out.Err().(*rop.AggregateError).Len())
}

func TestCombineUnit(t *testing.T) {
	t.Parallel()
	assert.True(t, rop.Equal(rop.Success(7), CombineUnit(rop.Success(7), rop.Ok())))

	err := rop.Validation("no", "terms")
	out := CombineUnit(rop.Success(7), rop.Fail[rop.Unit](err))
	assert.Same(t, err, out.Err())

	both := CombineUnit(rop.Fail[int](rop.Validation("a", "x")), rop.Fail[rop.Unit](err))
	assert.Len(t, both.Err().(*rop.ValidationError).Fields(), 2)
}

func TestCombineWith(t *testing.T) {
	t.Parallel()
	out := CombineWith(context.Background(), rop.Success(2), rop.Success(3),
		func(_ context.Context, a, b int) int { return a * b })

	assert.True(t, rop.Equal(rop.Success(6), out))
}

func TestCombineAll(t *testing.T) {
	t.Parallel()
	out := CombineAll(rop.Success(1), rop.Success(2), rop.Success(3))
	require.True(t, out.IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, out.Value())

	empty := CombineAll[int]()
	require.True(t, empty.IsSuccess())
	assert.Empty(t, empty.Value())

	err := rop.Conflict("c")
	lone := CombineAll(rop.Success(1), rop.Fail[int](err), rop.Success(3))
	assert.Same(t, err, lone.Err())
}

func TestCombineAll_MatchesLeftFold(t *testing.T) {
	t.Parallel()
	r1 := rop.Fail[int](rop.Validation("a", "f1"))
	r2 := rop.Fail[int](rop.NotFound("n"))
	r3 := rop.Fail[int](rop.Validation("b", "f2"))

	folded := Combine(Combine(r1, r2), r3)
	all := CombineAll(r1, r2, r3)

	assert.True(t, rop.ErrorsEqual(folded.Err(), all.Err()))
}

func TestTraverse_ShortCircuit(t *testing.T) {
	t.Parallel()
	var seen []int
	failure := rop.Domain("three")

	out := Traverse(context.Background(), []int{1, 2, 3, 4, 5},
		func(_ context.Context, x int) rop.Result[int] {
			seen = append(seen, x)
			if x == 3 {
				return rop.Fail[int](failure)
			}
			return rop.Success(x * 2)
		})

	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Same(t, failure, out.Err())
}

func TestTraverse_PreservesOrder(t *testing.T) {
	t.Parallel()
	out := Traverse(context.Background(), []string{"a", "bb", "ccc"},
		func(_ context.Context, s string) rop.Result[int] { return rop.Success(len(s)) })

	require.True(t, out.IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, out.Value())
}

func TestTraverse_Empty(t *testing.T) {
	t.Parallel()
	called := false
	out := Traverse(context.Background(), []int{}, func(_ context.Context, x int) rop.Result[int] {
		called = true
		return rop.Success(x)
	})

	require.True(t, out.IsSuccess())
	assert.Equal(t, []int{}, out.Value())
	assert.False(t, called)
}

func TestCompensate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Compensate(ctx, rop.Fail[int](rop.NotFound("x")),
		func(_ context.Context, _ rop.Error) rop.Result[int] { return rop.Success(0) })
	assert.True(t, rop.Equal(rop.Success(0), out))

	replacement := rop.Unexpected("still broken")
	out = Compensate(ctx, rop.Fail[int](rop.NotFound("x")),
		func(_ context.Context, _ rop.Error) rop.Result[int] { return rop.Fail[int](replacement) })
	assert.Same(t, replacement, out.Err())

	called := false
	Compensate(ctx, rop.Success(1), func(_ context.Context, _ rop.Error) rop.Result[int] {
		called = true
		return rop.Success(2)
	})
	assert.False(t, called)
}

func TestCompensateIf_PredicateGating(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	original := rop.Unexpected("db down")

	called := false
	out := CompensateIf(ctx, rop.Fail[int](original), rop.IsKind(rop.KindNotFound),
		func(_ context.Context, _ rop.Error) rop.Result[int] {
			called = true
			return rop.Success(0)
		})

	assert.False(t, called)
	assert.Same(t, original, out.Err())

	out = CompensateIf(ctx, rop.Fail[int](rop.NotFound("x")), rop.IsKind(rop.KindNotFound),
		func(_ context.Context, _ rop.Error) rop.Result[int] { return rop.Success(42) })
	assert.True(t, rop.Equal(rop.Success(42), out))
}

func TestRecoverOnFailure_ChainsLeftToRight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var calls []string

	out := RecoverOnFailure(ctx, rop.Fail[string](rop.NotFound("cache")),
		func(_ context.Context, err rop.Error) rop.Result[string] {
			calls = append(calls, "replica:"+err.Detail())
			return rop.Fail[string](rop.ServiceUnavailable("replica"))
		},
		func(_ context.Context, err rop.Error) rop.Result[string] {
			calls = append(calls, "primary:"+err.Detail())
			return rop.Success("value")
		},
		func(_ context.Context, err rop.Error) rop.Result[string] {
			calls = append(calls, "never")
			return rop.Success("other")
		})

	assert.True(t, rop.Equal(rop.Success("value"), out))
	assert.Equal(t, "replica:cache,primary:replica", strings.Join(calls, ","))
}

func TestRecoverOnFailure_SuccessSkipsAll(t *testing.T) {
	t.Parallel()
	out := RecoverOnFailure(context.Background(), rop.Success(1),
		func(_ context.Context, _ rop.Error) rop.Result[int] {
			t.Fatalf("recovery must not run on success")
			return rop.Success(2)
		})
	assert.Equal(t, 1, out.Value())
}

type email string
type name string
type age int

func tryEmail(s string) rop.Result[email] {
	return rop.SuccessIf(strings.Contains(s, "@"), email(s), rop.Validation("email is invalid", "email"))
}

func tryName(s string) rop.Result[name] {
	return rop.SuccessIf(s != "", name(s), rop.Validation("name is required", "name"))
}

func tryAge(n int) rop.Result[age] {
	return rop.SuccessIf(n >= 0, age(n), rop.Validation("age must not be negative", "age"))
}

func TestCombine_ThreeIndependentValidations(t *testing.T) {
	t.Parallel()
	out := Combine(Combine(tryEmail("bad"), tryName("")), tryAge(-1))

	v, ok := out.Err().(*rop.ValidationError)
	require.True(t, ok, "expected one validation error, got %v", out)

	fields := v.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "name", fields[1].Field)
	assert.Equal(t, "age", fields[2].Field)

	ok3 := Combine(Combine(tryEmail("a@b.c"), tryName("Ann")), tryAge(30))
	require.True(t, ok3.IsSuccess())
	assert.Equal(t, age(30), ok3.Value().Second)
	assert.Equal(t, name("Ann"), ok3.Value().First.Second)
}
