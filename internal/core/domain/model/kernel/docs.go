// Package kernel provides core domain primitives and utilities for the freight
// matching system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A value object representing a geographic latitude/longitude position
//   - EquipmentType: The trailer/vehicle classes loads require and carriers offer
//   - RouteEstimate: The computed distance, duration, and cost profile of a route
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
