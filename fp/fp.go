// Package fp provides small function combinators used alongside Result.
//
// Example:
//
//	shout := fp.Compose2(strings.ToUpper, strings.TrimSpace)
//	res := result.Map(loadName(), shout)
package fp

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v. It fits lazy fallbacks
// such as Result.GetOrElse.
//
// Example:
//
//	name := res.GetOrElse(fp.Constant("anonymous"))
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Compose composes same-typed functions in right-to-left order.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5) // 16
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		out := value
		for i := len(fns) - 1; i >= 0; i-- {
			out = fns[i](out)
		}
		return out
	}
}

// Compose2 returns g∘f, i.e. a function computing g(f(a)).
func Compose2[A any, B any, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
