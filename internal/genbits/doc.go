// Package genbits generates random bit-strings and query batches for
// cmd/bv-bench, and renders them in the query-file wire format. The
// bitvec package's own tests use their own small bit-string helpers.
package genbits
