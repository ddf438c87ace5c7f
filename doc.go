// Package lvdesign analyzes vehicle designs assembled from interlocking
// parts: whether they are road-legal, how complex they are to build, what
// they cost and what the market would pay for them.
//
// 🚀 What does lvdesign do?
//
//	Given an LDraw model, a part catalog and a palette of valid part types:
//		• Resolves every placement to a catalog record and an oriented box
//		• Derives geometry: size, wheelbase, track, hull volume, components
//		• Builds the Design Structure Matrix (DSM) of part intersections
//		• Scores structural complexity (component, interface, topology terms)
//		• Checks eight structural requirements against the vehicle frame
//		• Prices materials, assembly and overhead from the complexity
//		• Estimates a market price from logistic value curves
//
// Under the hood, everything is organized by concern:
//
//	geom/         — vectors, rotations, oriented boxes, convex hull volume
//	catalog/      — part records, palette of valid types, YAML/JSON/XML loaders
//	part/         — resolved placements and pairwise intersection
//	design/       — the design aggregate: axes, measurements, components
//	connectivity/ — union-find and connected components
//	cluster/      — single linkage and optimal leaf ordering
//	matrix/       — dense matrices and the Jacobi symmetric eigen solver
//	dsm/          — the DSM, its display order and complexity metrics
//	requirements/ — road-legality checks
//	cost/         — bill of materials, assembly and overhead cost
//	value/        — value curves and market price
//	analysis/     — the composite report, concurrent batch analysis
//	ldraw/        — LDraw model parsing
//	config/, logging/, metrics/ — ambient settings, zap logging, Prometheus
//	cmd/lvdesign  — the command-line front end
//
// Quick example:
//
//	cat, _ := catalog.LoadCatalogFile("bricks.yaml")
//	valid, _ := catalog.LoadPaletteFile("palette.xml")
//	model, _ := ldraw.ParseFile("roadster.ldr")
//
//	a, _ := analysis.New(cat, valid)
//	r, _ := a.Analyze(ctx, analysis.Input{Name: model.Name, Parts: model.Parts})
//	fmt.Println(r.IsValid, r.TotalCost, r.TotalRevenue)
package lvdesign
