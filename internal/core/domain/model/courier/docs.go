// Package courier contains the Courier aggregate: a delivery agent with a
// coverage zone, an availability state and the set of shipments currently
// assigned to them. Reservation and release keep availability consistent
// with the assignment list.
package courier
