// Package carrier provides the read-only carrier capability snapshot the
// matching core consumes from the external carrier directory.
//
// The package includes:
//   - Capability: equipment, service areas, safety and on-time ratings,
//     insurance validity, hazmat certification, position, and fleet
//   - Vehicle: one assignable unit of the fleet
//
// Capability is a boundary record, not an aggregate: the core never mutates
// it, so it carries exported fields and a Validate method instead of a
// guarded constructor. Eligibility filtering and match scoring are the only
// consumers.
package carrier
