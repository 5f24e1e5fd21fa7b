// Package hashset2 implements a double-hash dictionary: a set/map whose
// keys carry two independent hash functions (see fint.FInt.Hash1/Hash2).
// Both inner tables are consulted on lookup and written on insert, so a
// key whose canonical hash falls on a bucket boundary under one hash
// function is still found via the other.
//
// Known limitation (preserved deliberately, not a bug to fix): if a
// distinct-by-equality value collides with an existing entry on both
// hashes, HashSet2.Insert / HashMap2.Insert silently keep the first value
// and report the insert as a duplicate. There is no overwrite path. This
// mirrors the original algorithm's documented behavior; "fixing" it would
// change which entity a search branch resolves to.
package hashset2
