// Package pipeline orchestrates a batch: table discovery, per-table
// enrichment and writing, the row failure policy, and the summary and exit
// code for the run.
package pipeline
