// Package vehicle contains the Vehicle aggregate and the vehicle type
// capacity table used by the selector service.
package vehicle
