package http

import (
	"net/http"

	"shipcore/internal/core/domain/model/shipment"
)

// ActorHeader carries the id of the acting operator on mutating requests.
const ActorHeader = "X-Actor-Id"

// headerAuthenticationContext implements AuthenticationContext from the
// request headers. Requests without an actor header are attributed to the
// system actor.
type headerAuthenticationContext struct {
	request *http.Request
}

// CurrentActorID returns the acting operator id, or the system actor when
// the header is absent.
func (c headerAuthenticationContext) CurrentActorID() string {
	if actor := c.request.Header.Get(ActorHeader); actor != "" {
		return actor
	}
	return shipment.SystemActor
}
