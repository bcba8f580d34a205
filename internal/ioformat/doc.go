// Package ioformat implements the external query-file contract: parsing
// the "<n>\n<bits>\n<queries...>" input, translating query lines into
// [bitvec.Query] values, and writing answers (one per line, "none"
// encoded as [bitvec.NoneValue]) atomically to the output path.
package ioformat
