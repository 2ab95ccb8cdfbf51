// Package services provides domain services that orchestrate business
// operations across multiple domain entities.
//
// The package includes:
//   - PricingEngine: itemized shipment pricing over a tariff and distance
//   - VehicleSelector: vehicle type recommendation and validation
//   - ShipmentDispatcher: matching pending shipments to eligible couriers
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
