// Package shipment contains the Shipment aggregate: the operational delivery
// created when an order is approved, together with its value objects
// (Package, AdditionalService, CostBreakdown, Incident, StatusChange).
//
// The aggregate owns the transit state machine. All status changes go through
// one canonical transition table and every change appends an entry to the
// shipment's audit history. A courier is bound exactly in the statuses that
// require one; cancellation clears the binding and releases the vehicle.
package shipment
