// Package naming decides where each input table is written. Outputs keep the
// input's base name and land flat in the output directory; two inputs with
// the same base name in one run get " - dupN" suffixes instead of
// overwriting each other.
package naming
