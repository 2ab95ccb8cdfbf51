package ports

// AuthenticationContext identifies the actor performing an operation.
// The actor id stamps every status change appended to a shipment.
type AuthenticationContext interface {
	// CurrentActorID returns the id of the acting user, or the system actor
	// for unattended operations.
	CurrentActorID() string
}

// NotificationSink receives fire-and-forget notifications about lifecycle
// events. Implementations log failures and never propagate them to the
// caller of a lifecycle operation.
type NotificationSink interface {
	Notify(recipientID, notificationType, message string)
}
