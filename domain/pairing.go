package domain

// Assignment tells a giver who they gift to.
type Assignment struct {
	Giver     string
	Recipient string
}

// Pairing maps every giver to exactly one recipient.
// Assignments keep the order of the participant list they were drawn from.
type Pairing struct {
	assignments []Assignment
	index       map[string]int
	attempts    int
}

func NewPairing(assignments []Assignment, attempts int) Pairing {
	index := make(map[string]int, len(assignments))
	for i, a := range assignments {
		index[a.Giver] = i
	}
	return Pairing{
		assignments: append([]Assignment(nil), assignments...),
		index:       index,
		attempts:    attempts,
	}
}

// Assignments returns a copy, callers cannot alter the pairing.
func (p Pairing) Assignments() []Assignment {
	return append([]Assignment(nil), p.assignments...)
}

func (p Pairing) RecipientOf(giver string) (string, bool) {
	i, ok := p.index[giver]
	if !ok {
		return "", false
	}
	return p.assignments[i].Recipient, true
}

func (p Pairing) Len() int {
	return len(p.assignments)
}

// Attempts is the number of shuffles the draw needed.
func (p Pairing) Attempts() int {
	return p.attempts
}
