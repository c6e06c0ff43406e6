package solo

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err rop.Error) rop.Result[T] {
	return rop.Fail[T](err)
}

// Validate checks input and reports a rejected value as a validation
// error on field.
func Validate[T any](ctx context.Context, input T, field string,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {

	if isValid, errMsg := validate(ctx, input); !isValid {
		return rop.Fail[T](rop.Validation(errMsg, field))
	}
	return rop.Success(input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	return rop.FailFrom[In, Out](input)
}

func Bind[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.FailFrom[In, Out](input)
}

func Tap[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func TapIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() && condition(ctx, input.Value()) {
		onSuccessAndCondition(ctx, input.Value())
	}
	return input
}

func TapError[T any](ctx context.Context,
	input rop.Result[T],
	onFailure func(ctx context.Context, err rop.Error)) rop.Result[T] {

	if input.IsFailure() {
		onFailure(ctx, input.Err())
	}
	return input
}

// DoubleTap runs exactly one of the side effects. onCancel handles
// failures caused by an ended context; when nil, onError gets them.
func DoubleTap[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err rop.Error),
	onCancel func(ctx context.Context, err rop.Error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		onSuccess(ctx, input.Value())
	case input.IsCancel() && onCancel != nil:
		onCancel(ctx, input.Err())
	default:
		onError(ctx, input.Err())
	}
	return input
}

func Ensure[T any](ctx context.Context,
	input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	err rop.Error) rop.Result[T] {

	if input.IsSuccess() && !predicate(ctx, input.Value()) {
		return rop.Fail[T](err)
	}
	return input
}

// EnsureFunc is Ensure with the error built from the rejected value.
func EnsureFunc[T any](ctx context.Context,
	input rop.Result[T],
	predicate func(ctx context.Context, r T) bool,
	errFactory func(ctx context.Context, r T) rop.Error) rop.Result[T] {

	if input.IsSuccess() && !predicate(ctx, input.Value()) {
		return rop.Fail[T](errFactory(ctx, input.Value()))
	}
	return input
}

// EnsureAll runs every check against a successful input and merges all
// failures. The checks are independent: one failing does not skip the
// rest.
func EnsureAll[T any](ctx context.Context,
	input rop.Result[T],
	checks ...func(ctx context.Context, in T) rop.Result[rop.Unit]) rop.Result[T] {

	if input.IsFailure() || len(checks) == 0 {
		return input
	}

	var err rop.Error
	for _, check := range checks {
		if res := check(ctx, input.Value()); res.IsFailure() {
			err = rop.MergeErrors(err, res.Err())
		}
	}

	if err != nil {
		return rop.Fail[T](err)
	}
	return input
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); !rop.IsNil(err) {
			return rop.Fail[T](rop.As(err))
		}
	}
	return input
}

func MapError[T any](ctx context.Context,
	input rop.Result[T],
	onFailure func(ctx context.Context, err rop.Error) rop.Error) rop.Result[T] {

	if input.IsFailure() {
		return rop.Fail[T](onFailure(ctx, input.Err()))
	}
	return input
}

// Try calls onTryExecute on success. A returned error or a panic becomes
// a failure.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}
	return rop.Try(func() (Out, error) {
		return onTryExecute(ctx, input.Value())
	})
}

func Match[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err rop.Error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}

// Finally is Match with cancelled failures routed to onCancel.
func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.Error) Out,
	onCancel func(ctx context.Context, err rop.Error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}
