package geom

// Box returns the eight corners of the local axis-aligned box spanned by
// lower = offset and upper = offset − dimensions.
//
// The corner order is fixed and part of the contract:
//
//	(l,l,l) (u,l,l) (u,u,l) (u,u,u) (u,l,u) (l,l,u) (l,u,u) (l,u,l)
//
// where each letter selects the lower or upper coordinate of X, Y, Z.
func Box(offset, dimensions Vec) [8]Vec {
	l := offset
	u := Vec{X: offset.X - dimensions.X, Y: offset.Y - dimensions.Y, Z: offset.Z - dimensions.Z}

	return [8]Vec{
		{X: l.X, Y: l.Y, Z: l.Z},
		{X: u.X, Y: l.Y, Z: l.Z},
		{X: u.X, Y: u.Y, Z: l.Z},
		{X: u.X, Y: u.Y, Z: u.Z},
		{X: u.X, Y: l.Y, Z: u.Z},
		{X: l.X, Y: l.Y, Z: u.Z},
		{X: l.X, Y: u.Y, Z: u.Z},
		{X: l.X, Y: u.Y, Z: l.Z},
	}
}

// Transform maps each local corner c to round(r·c + position).
// The result keeps the input order.
func Transform(corners [8]Vec, r Rotation, position Vec) [8]Vec {
	var out [8]Vec
	for i, c := range corners {
		w := r.Apply(c)
		out[i] = Round(Vec{X: w.X + position.X, Y: w.Y + position.Y, Z: w.Z + position.Z})
	}

	return out
}
