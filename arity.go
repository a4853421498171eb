package cascade

// Map2 combines 2 signals through a curried Apply chain.
func Map2[T0, T1, O any](fn func(T0, T1) O, s0 Signal[T0], s1 Signal[T1]) Signal[O] {
	f := Map(func(v0 T0) func(T1) O {
		return func(v1 T1) O { return fn(v0, v1) }
	}, s0)
	return Apply(f, s1)
}

// Map3 combines 3 signals through a curried Apply chain.
func Map3[T0, T1, T2, O any](fn func(T0, T1, T2) O, s0 Signal[T0], s1 Signal[T1], s2 Signal[T2]) Signal[O] {
	f := Map2(func(v0 T0, v1 T1) func(T2) O {
		return func(v2 T2) O { return fn(v0, v1, v2) }
	}, s0, s1)
	return Apply(f, s2)
}

// Map4 combines 4 signals through a curried Apply chain.
func Map4[T0, T1, T2, T3, O any](fn func(T0, T1, T2, T3) O, s0 Signal[T0], s1 Signal[T1], s2 Signal[T2], s3 Signal[T3]) Signal[O] {
	f := Map3(func(v0 T0, v1 T1, v2 T2) func(T3) O {
		return func(v3 T3) O { return fn(v0, v1, v2, v3) }
	}, s0, s1, s2)
	return Apply(f, s3)
}

// Map5 combines 5 signals through a curried Apply chain.
func Map5[T0, T1, T2, T3, T4, O any](fn func(T0, T1, T2, T3, T4) O, s0 Signal[T0], s1 Signal[T1], s2 Signal[T2], s3 Signal[T3], s4 Signal[T4]) Signal[O] {
	f := Map4(func(v0 T0, v1 T1, v2 T2, v3 T3) func(T4) O {
		return func(v4 T4) O { return fn(v0, v1, v2, v3, v4) }
	}, s0, s1, s2, s3)
	return Apply(f, s4)
}

// Map6 combines 6 signals through a curried Apply chain.
func Map6[T0, T1, T2, T3, T4, T5, O any](fn func(T0, T1, T2, T3, T4, T5) O, s0 Signal[T0], s1 Signal[T1], s2 Signal[T2], s3 Signal[T3], s4 Signal[T4], s5 Signal[T5]) Signal[O] {
	f := Map5(func(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4) func(T5) O {
		return func(v5 T5) O { return fn(v0, v1, v2, v3, v4, v5) }
	}, s0, s1, s2, s3, s4)
	return Apply(f, s5)
}

// Map7 combines 7 signals through a curried Apply chain.
func Map7[T0, T1, T2, T3, T4, T5, T6, O any](fn func(T0, T1, T2, T3, T4, T5, T6) O, s0 Signal[T0], s1 Signal[T1], s2 Signal[T2], s3 Signal[T3], s4 Signal[T4], s5 Signal[T5], s6 Signal[T6]) Signal[O] {
	f := Map6(func(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) func(T6) O {
		return func(v6 T6) O { return fn(v0, v1, v2, v3, v4, v5, v6) }
	}, s0, s1, s2, s3, s4, s5)
	return Apply(f, s6)
}

// Map8 combines 8 signals through a curried Apply chain.
func Map8[T0, T1, T2, T3, T4, T5, T6, T7, O any](fn func(T0, T1, T2, T3, T4, T5, T6, T7) O, s0 Signal[T0], s1 Signal[T1], s2 Signal[T2], s3 Signal[T3], s4 Signal[T4], s5 Signal[T5], s6 Signal[T6], s7 Signal[T7]) Signal[O] {
	f := Map7(func(v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) func(T7) O {
		return func(v7 T7) O { return fn(v0, v1, v2, v3, v4, v5, v6, v7) }
	}, s0, s1, s2, s3, s4, s5, s6)
	return Apply(f, s7)
}
