// internal/domain/entity/change_log.go
package entity

import (
	"time"
)

// Entity kinds recorded in the change log
const (
	KindAirline = "airline"
	KindAirport = "airport"
)

// Change log actions. Association changes are logged against the airline.
const (
	ActionCreate          = "create"
	ActionUpdate          = "update"
	ActionDelete          = "delete"
	ActionAssociate       = "associate"
	ActionDissociate      = "dissociate"
	ActionReplaceAirports = "replace_airports"
)

// ChangeLog is an audit record of a successful mutation
type ChangeLog struct {
	ID        string                 `json:"id" bson:"_id,omitempty"`
	Entity    string                 `json:"entity" bson:"entity"`
	EntityID  uint                   `json:"entityId" bson:"entityId"`
	Action    string                 `json:"action" bson:"action"`
	Details   map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
}
