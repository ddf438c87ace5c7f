// Package cost estimates the production cost of a design.
//
//	materials            = Σ unit cost over valid parts (one per instance)
//	assembly.components  = C1 / 100
//	assembly.integration = C2·C3 / 100
//	assembly.total       = (C1 + C2·C3) / 100
//	overhead.x           = rate_x · (materials + assembly.total)
//	total                = materials + assembly.total + overhead.total
//
// Overhead rates: engineering 0.35, marketing 0.20, facilities 0.30,
// administration 0.25; overhead.total uses their sum, 1.10.
//
// The bill of materials groups valid parts by catalog entry id.
package cost
