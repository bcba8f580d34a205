// Package tuning resolves the BLOCK/SUPER/MEGA/SUPERBLOCK_BITS quadruple
// a [bitvec.BitVector] is built with. Callers get [bitvec.DefaultTuning]
// unless the file named by the BV_TUNING_CONFIG environment variable
// exists, in which case its fields override the defaults it supplies.
package tuning
