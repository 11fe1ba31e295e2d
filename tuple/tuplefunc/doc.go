// Package tuplefunc provides functions that convert between multiple-argument
// and multiple-return functions and single-argument, single-return functions.
// This makes it trivial to pass arbitrary functions to generic operations
// that are designed to operate on func(T) R.
//
// The names of the functions in this package match the following regular expression:
//
//	(To|From)(A|R)_[0-9]+_[0-9]+
//
// The letter says which side of the function is converted:
//
//	A - argument parameters
//	R - return parameters
//
// The first number is the number of argument parameters;
// the second number is the number of return parameters.
// To converts to the tuple form; From converts back.
//
// So, for example:
//
//	ToR_1_3
//
// converts from (for some types A, R0, R1 and R2)
//
//	func(A) (R0, R1, R2)
//
// to:
//
//	func(A) tuple.T3[R0, R1, R2]
//
// and
//
//	ToA_2_1
//
// converts from
//
//	func(A0, A1) R
//
// to:
//
//	func(tuple.T2[A0, A1]) R
package tuplefunc
