// Package catalog holds the read-only reference data the design engine
// resolves placed parts against.
//
// What
//
//   - Entry: physical attributes of one part type, optionally qualified by an
//     LDraw color (bounding box, cost, mass, safety, coolness, permitted
//     forward axes, BrickLink color).
//   - Catalog: immutable lookup keyed by (type id, color) with a
//     color-agnostic fallback to the first entry of the same type.
//   - ValidTypeSet: the palette of type ids recognized as legitimate parts of
//     an assembly, always including the documented "4345b" correction.
//
// Loading
//
//	LoadCatalog decodes a YAML (or JSON) list of entries using the field names
//	of the upstream brick dataset (bl_id, ld_color, offset, dimensions, ...).
//	LoadPalette scans a palette XML document for ITEM/ITEMID elements.
//
// Concurrency
//
//	Both structures are built once at process start and never mutated, so
//	any number of concurrent analyses may share them without locking.
package catalog
