package model

import "encoding/json"

// Party identifies who carries an obligation. The zero value with
// AllParties set is the default bucket used when no organization
// subject is found; it cannot collide with a real party whose name
// happens to be "All Parties".
type Party struct {
	Name       string
	AllParties bool
}

// AllPartiesSentinel is the default bucket for unattributed obligations.
var AllPartiesSentinel = Party{AllParties: true}

// NamedParty returns a Party for an organization name.
func NamedParty(name string) Party {
	return Party{Name: name}
}

// Display returns the human-readable party label.
func (p Party) Display() string {
	if p.AllParties {
		return "All Parties"
	}
	return p.Name
}

// ObligationMap maps parties to their obligation sentences. Parties are
// unique and iterate in insertion order; sentences per party keep
// encounter order.
type ObligationMap struct {
	order   []Party
	entries map[Party][]string
}

// NewObligationMap creates an empty obligation map.
func NewObligationMap() *ObligationMap {
	return &ObligationMap{entries: make(map[Party][]string)}
}

// Add appends an obligation sentence to a party's list.
func (m *ObligationMap) Add(party Party, sentence string) {
	if _, ok := m.entries[party]; !ok {
		m.order = append(m.order, party)
	}
	m.entries[party] = append(m.entries[party], sentence)
}

// Merge appends all entries of other into m, preserving other's order.
func (m *ObligationMap) Merge(other *ObligationMap) {
	if other == nil {
		return
	}
	for _, party := range other.order {
		for _, sentence := range other.entries[party] {
			m.Add(party, sentence)
		}
	}
}

// Parties returns the parties in insertion order.
func (m *ObligationMap) Parties() []Party {
	return m.order
}

// Sentences returns the obligation sentences for a party.
func (m *ObligationMap) Sentences(party Party) []string {
	return m.entries[party]
}

// Len returns the number of distinct parties.
func (m *ObligationMap) Len() int {
	return len(m.order)
}

// Total returns the total obligation count across all parties.
func (m *ObligationMap) Total() int {
	total := 0
	for _, sentences := range m.entries {
		total += len(sentences)
	}
	return total
}

// partyObligations is the serialized form of one map entry.
type partyObligations struct {
	Party      string   `json:"party"`
	AllParties bool     `json:"all_parties,omitempty"`
	Sentences  []string `json:"sentences"`
}

// MarshalJSON serializes the map as an ordered array so insertion order
// survives the round trip.
func (m *ObligationMap) MarshalJSON() ([]byte, error) {
	out := make([]partyObligations, 0, len(m.order))
	for _, party := range m.order {
		out = append(out, partyObligations{
			Party:      party.Display(),
			AllParties: party.AllParties,
			Sentences:  m.entries[party],
		})
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores an obligation map from its array form.
func (m *ObligationMap) UnmarshalJSON(data []byte) error {
	var entries []partyObligations
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	m.order = nil
	m.entries = make(map[Party][]string)
	for _, e := range entries {
		party := Party{Name: e.Party}
		if e.AllParties {
			party = AllPartiesSentinel
		}
		for _, s := range e.Sentences {
			m.Add(party, s)
		}
	}
	return nil
}
