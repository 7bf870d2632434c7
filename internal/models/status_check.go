package models

import "time"

// StatusCheckListLimit caps status check listings.
const StatusCheckListLimit = 1000

// StatusCheck is a diagnostic record used to verify store connectivity.
type StatusCheck struct {
	ID         string    `bson:"_id" db:"id" json:"id"`
	ClientName string    `bson:"client_name" db:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" db:"timestamp" json:"timestamp"`
}
