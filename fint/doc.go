// Package fint implements a verified-direction interval floating-point
// number: every arithmetic operation returns the tightest interval that is
// guaranteed, under worst-case IEEE-754 rounding, to contain the true
// mathematical result.
//
// Geometric identity tests built on raw float64 are routinely sabotaged by
// rounding drift: two numerically "equal" quantities computed along
// different paths rarely compare bit-equal. fint sidesteps this by treating
// every quantity as a closed interval [Lo, Hi] and defining equality as
// interval overlap rather than bitwise identity. Two independent hash
// buckets (see Hash1/Hash2) let a double-hash dictionary (package
// hashset2) find any entity an overlapping interval might denote, even
// when the interval straddles a hash bucket boundary.
package fint
