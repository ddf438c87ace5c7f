// Package value estimates the market value of a design.
//
// Six sub-scores share the logistic transform
//
//	f(x; min, max, x0, k) = min + (max − min) / (1 + e^(−k·(x − x0)))
//
// which maps any finite x into [min, max] (or [max, min] when min > max):
//
//	score         input                               range     x0    k
//	passenger     seats·50 + volume                   0..100    200   0.02
//	cargo         cargo volume·4 + volume             0..100    125   0.03
//	handling      mass + wheelbase                    100..0    75    0.075
//	acceleration  mass·5 + height                     100..0    160   0.1
//	safety        mass·2 + Σ safety (aligned parts)   0..100    80    0.04
//	coolness      Σ coolness                          0..100    30    0.09
//
// Volumes are in cm³ and lengths in mm. Total is the weighted sum with
// weights 0.2, 0.2, 0.1, 0.15, 0.15, 0.2; Price maps Total into 2..20
// (x0 = 50, k = 0.1).
package value
