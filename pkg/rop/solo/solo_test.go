package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/railway/pkg/rop"
)

func TestMap_Identity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	identity := func(_ context.Context, v int) int { return v }

	for _, r := range []rop.Result[int]{rop.Success(3), rop.Fail[int](rop.NotFound("x"))} {
		if out := Map(ctx, r, identity); !rop.Equal(r, out) {
			t.Fatalf("map(identity) changed %v into %v", r, out)
		}
	}
}

func TestMap_SkipsOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := rop.Conflict("taken")

	called := false
	out := Map(ctx, rop.Fail[int](err), func(_ context.Context, v int) string {
		called = true
		return "x"
	})

	if called {
		t.Fatalf("map function must not run on failure")
	}
	if out.IsSuccess() || out.Err() != rop.Error(err) {
		t.Fatalf("expected the original error, got %v", out)
	}
}

func TestBind_Identity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	success := func(_ context.Context, v int) rop.Result[int] { return rop.Success(v) }

	for _, r := range []rop.Result[int]{rop.Success(3), rop.Fail[int](rop.NotFound("x"))} {
		if out := Bind(ctx, r, success); !rop.Equal(r, out) {
			t.Fatalf("bind(success) changed %v into %v", r, out)
		}
	}
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := rop.Validation("required", "email")

	called := false
	out := Bind(ctx, rop.Fail[string](err), func(_ context.Context, s string) rop.Result[int] {
		called = true
		return rop.Success(len(s))
	})

	if called {
		t.Fatalf("bind function must not run on failure")
	}
	if out.Err() != rop.Error(err) {
		t.Fatalf("expected the same error value, got %v", out.Err())
	}
}

func TestBind_ReturnsFunctionResultAsIs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := rop.Domain("odd")

	out := Bind(ctx, rop.Success(3), func(_ context.Context, v int) rop.Result[int] {
		return rop.Fail[int](err)
	})
	if out.Err() != rop.Error(err) {
		t.Fatalf("expected bind to return the function failure, got %v", out)
	}
}

func TestTap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	in := rop.Success(4)
	out := Tap(ctx, in, func(_ context.Context, v int) { seen = v })
	if seen != 4 || !rop.Equal(in, out) {
		t.Fatalf("expected side effect with 4 and unchanged result, got seen=%d out=%v", seen, out)
	}

	seen = 0
	failed := rop.Fail[int](rop.Unexpected("x"))
	out = Tap(ctx, failed, func(_ context.Context, v int) { seen = 1 })
	if seen != 0 || !rop.Equal(failed, out) {
		t.Fatalf("expected no side effect on failure, got seen=%d", seen)
	}
}

func TestTapIf(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	count := 0
	even := func(_ context.Context, v int) bool { return v%2 == 0 }
	inc := func(_ context.Context, _ int) { count++ }

	TapIf(ctx, rop.Success(2), even, inc)
	TapIf(ctx, rop.Success(3), even, inc)
	TapIf(ctx, rop.Fail[int](rop.Unexpected("x")), even, inc)

	if count != 1 {
		t.Fatalf("expected one side effect, got %d", count)
	}
}

func TestTapError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var seen rop.Error

	TapError(ctx, rop.Success(1), func(_ context.Context, err rop.Error) { seen = err })
	if seen != nil {
		t.Fatalf("tap error ran on success")
	}

	err := rop.Forbidden("nope")
	TapError(ctx, rop.Fail[int](err), func(_ context.Context, e rop.Error) { seen = e })
	if seen != rop.Error(err) {
		t.Fatalf("expected tap error to see %v, got %v", err, seen)
	}
}

func TestDoubleTap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var calls []string

	onSuccess := func(_ context.Context, _ int) { calls = append(calls, "success") }
	onError := func(_ context.Context, _ rop.Error) { calls = append(calls, "error") }
	onCancel := func(_ context.Context, _ rop.Error) { calls = append(calls, "cancel") }

	DoubleTap(ctx, rop.Success(1), onSuccess, onError, onCancel)
	DoubleTap(ctx, rop.Fail[int](rop.Unexpected("x")), onSuccess, onError, onCancel)
	DoubleTap(ctx, rop.Fail[int](rop.Canceled(context.Canceled)), onSuccess, onError, onCancel)
	DoubleTap(ctx, rop.Fail[int](rop.Canceled(context.Canceled)), onSuccess, onError, nil)

	want := []string{"success", "error", "cancel", "error"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, calls)
		}
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	positive := func(_ context.Context, v int) bool { return v > 0 }
	err := rop.Domain("must be positive")

	if out := Ensure(ctx, rop.Success(1), positive, err); !rop.Equal(rop.Success(1), out) {
		t.Fatalf("expected pass through, got %v", out)
	}
	if out := Ensure(ctx, rop.Success(-1), positive, err); out.Err() != rop.Error(err) {
		t.Fatalf("expected failure with %v, got %v", err, out)
	}

	original := rop.NotFound("x")
	called := false
	out := Ensure(ctx, rop.Fail[int](original), func(_ context.Context, _ int) bool {
		called = true
		return true
	}, err)
	if called || out.Err() != rop.Error(original) {
		t.Fatalf("predicate must not run on failure; called=%v out=%v", called, out)
	}
}

func TestEnsureFunc(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	calls := 0
	factory := func(_ context.Context, v int) rop.Error {
		calls++
		return rop.Validation("too small", "age")
	}
	adult := func(_ context.Context, v int) bool { return v >= 18 }

	EnsureFunc(ctx, rop.Success(20), adult, factory)
	if calls != 0 {
		t.Fatalf("factory must only run when the predicate fails")
	}

	out := EnsureFunc(ctx, rop.Success(10), adult, factory)
	if calls != 1 || out.Err().Kind() != rop.KindValidation {
		t.Fatalf("expected validation failure, got %v", out)
	}
}

func TestEnsureAll_AccumulatesEveryCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	checks := []func(context.Context, string) rop.Result[rop.Unit]{
		func(_ context.Context, s string) rop.Result[rop.Unit] {
			return rop.SuccessIf(len(s) >= 8, rop.Unit{}, rop.Validation("too short", "password"))
		},
		func(_ context.Context, s string) rop.Result[rop.Unit] { return rop.Ok() },
		func(_ context.Context, s string) rop.Result[rop.Unit] {
			return rop.SuccessIf(s != "secret", rop.Unit{}, rop.Validation("too common", "password"))
		},
	}

	out := EnsureAll(ctx, rop.Success("secret"), checks...)
	v, ok := out.Err().(*rop.ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", out)
	}
	msgs, _ := v.Field("password")
	if len(v.Fields()) != 1 || len(msgs) != 2 {
		t.Fatalf("expected one field with two messages, got %v", v.Fields())
	}

	if out := EnsureAll(ctx, rop.Success("long enough pass"), checks...); !out.IsSuccess() {
		t.Fatalf("expected success, got %v", out)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	nonEmpty := func(_ context.Context, s string) (bool, string) { return s != "", "empty" }

	if out := Validate(ctx, "a", "name", nonEmpty); !out.IsSuccess() {
		t.Fatalf("expected success, got %v", out)
	}
	out := Validate(ctx, "", "name", nonEmpty)
	v, ok := out.Err().(*rop.ValidationError)
	if !ok || v.Fields()[0].Field != "name" {
		t.Fatalf("expected validation error on name, got %v", out)
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FailOnError(ctx, rop.Success(1), func(_ context.Context, _ int) error { return errors.New("io") })
	if out.IsSuccess() || out.Err().Kind() != rop.KindUnexpected {
		t.Fatalf("expected unexpected failure, got %v", out)
	}
	out = FailOnError(ctx, rop.Success(1), func(_ context.Context, _ int) error { return nil })
	if !out.IsSuccess() {
		t.Fatalf("expected success, got %v", out)
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	toNotFound := func(_ context.Context, err rop.Error) rop.Error { return rop.NotFound(err.Detail()) }

	out := MapError(ctx, rop.Fail[int](rop.Unexpected("row")), toNotFound)
	if out.Err().Kind() != rop.KindNotFound || out.Err().Detail() != "row" {
		t.Fatalf("expected mapped not found, got %v", out)
	}

	called := false
	MapError(ctx, rop.Success(1), func(_ context.Context, err rop.Error) rop.Error {
		called = true
		return err
	})
	if called {
		t.Fatalf("map error must not run on success")
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, rop.Success(4), func(_ context.Context, v int) (int, error) { return v * v, nil })
	if !rop.Equal(rop.Success(16), out) {
		t.Fatalf("expected 16, got %v", out)
	}

	out = Try(ctx, rop.Success(4), func(_ context.Context, v int) (int, error) { return 0, errors.New("try-error") })
	if out.IsSuccess() || out.Err().Detail() != "try-error" {
		t.Fatalf("expected try-error, got %v", out)
	}

	out = Try(ctx, rop.Success(4), func(_ context.Context, v int) (int, error) { panic("boom") })
	if out.IsSuccess() || out.Err().Kind() != rop.KindUnexpected {
		t.Fatalf("expected recovered panic, got %v", out)
	}

	err := rop.BadRequest("bad")
	out = Try(ctx, rop.Fail[int](err), func(_ context.Context, v int) (int, error) { return v, nil })
	if out.Err() != rop.Error(err) {
		t.Fatalf("expected original failure, got %v", out)
	}
}

// Panics in plain combinators are programming defects and reach the caller.
func TestMap_PropagatesPanic(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic to propagate")
		}
	}()
	Map(context.Background(), rop.Success(1), func(_ context.Context, _ int) int { panic("defect") })
}

func TestMatchAndFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onSuccess := func(_ context.Context, v int) int { return v + 100 }
	onFailure := func(_ context.Context, _ rop.Error) int { return -1 }
	onCancel := func(_ context.Context, _ rop.Error) int { return -2 }

	if s := Match(ctx, rop.Success(3), onSuccess, onFailure); s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}
	if f := Match(ctx, rop.Fail[int](rop.Unexpected("x")), onSuccess, onFailure); f != -1 {
		t.Fatalf("expected -1, got %d", f)
	}
	if c := Finally(ctx, rop.Fail[int](rop.Canceled(context.DeadlineExceeded)), onSuccess, onFailure, onCancel); c != -2 {
		t.Fatalf("expected -2 for cancel, got %d", c)
	}
}
