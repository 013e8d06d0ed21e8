// Package cuckoo provides a two-table cuckoo hash map from string keys to
// int32 values.
//
// Collisions are resolved by eviction: every key has exactly one candidate
// slot per table, and inserting into an occupied slot displaces the occupant
// into its alternate slot in the other table. Lookups therefore probe at most
// two slots, giving O(1) worst-case reads and O(1) expected writes.
//
// The map keeps its load factor below 0.45 by doubling both tables, and it
// recovers from eviction cycles the same way. Capacity only ever grows.
//
// There is no delete operation; re-putting a key overwrites its value in
// place. The map is not safe for concurrent use.
package cuckoo
