// Package domain contains core concepts of the secret santa draw.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "github.com/samber/lo"

// Participant is a member of the draw. Name is the pairing key and must be
// unique within a draw; Address is where the private notification goes.
type Participant struct {
	Name    string `validate:"required"`
	Address string `validate:"required,email"`
}

// Names returns participant names in input order.
func Names(participants []Participant) []string {
	return lo.Map(participants, func(p Participant, _ int) string {
		return p.Name
	})
}

// Contacts indexes participant addresses by name.
func Contacts(participants []Participant) map[string]string {
	return lo.SliceToMap(participants, func(p Participant) (string, string) {
		return p.Name, p.Address
	})
}
