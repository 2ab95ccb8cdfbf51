// Package order contains the Order aggregate: a customer's shipping request
// between creation and its promotion to a shipment.
//
// The aggregate owns the payment/approval state machine. All status changes
// go through one canonical transition table; approval is the only transition
// with a side effect (stamping the shipment and invoice references), and it
// can happen at most once per order. Cancelled orders are retained forever.
package order
