// Package analysis runs the whole engine over one design: it resolves the
// raw placements, derives the measurements, builds the DSM and evaluates
// the requirements, cost and value models into a single Report.
//
// An Analyzer is built once with the process-wide catalog and palette and is
// safe for concurrent use: every call works on its own design and shares
// only read-only reference data. Context is honoured at the call boundary
// only; a started analysis runs to completion.
//
// AnalyzeAll fans a batch of inputs out over a bounded worker group.
package analysis
