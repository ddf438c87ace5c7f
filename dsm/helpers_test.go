// SPDX-License-Identifier: MIT

package dsm_test

import "math"

func nan() float64 { return math.NaN() }
