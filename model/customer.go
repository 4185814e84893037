// model/customer.go
package model

import "time"

type Customer struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Job          string    `json:"job,omitempty"`
	Address      string    `json:"address,omitempty"`
	Email        string    `json:"email"`
	CreationDate time.Time `json:"creation_date"`
}

// CustomerRef is the customer summary carried on a loan.
type CustomerRef struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
