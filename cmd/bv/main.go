// Package main provides bv, a CLI that builds a succinct rank/select
// bit-vector from a query file and answers every query in the file.
package main

import "os"

func main() {
	os.Exit(Run(os.Args, os.Environ(), os.Stdout, os.Stderr))
}
