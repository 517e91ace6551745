// Package abi provides internal arithmetic for the codec cursors.
//
// # Contents
//
//   - helpers.go: alignment padding, overflow-safe budget sums, scalar validation
//
// This package is internal to the codec.
package abi
