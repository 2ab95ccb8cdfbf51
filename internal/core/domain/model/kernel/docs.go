// Package kernel provides core domain primitives shared by the shipment
// lifecycle engine. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Address: An immutable postal address with an optional geographic point
//   - GeoPoint: Validated latitude/longitude coordinates
//   - Zone: The coverage/delivery zones the operator services
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
