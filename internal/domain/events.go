package domain

// EventID identifies one concrete event of the fest.
type EventID string

const (
	EventDSAMasters    EventID = "dsa-masters"
	EventCipherville   EventID = "cipherville"
	EventEthitechMania EventID = "ethitech-mania"
)

// SelectorAllEvents is the combo form value meaning "register for every event".
const SelectorAllEvents = "all-events"

// AllEvents returns the concrete events in catalog order.
func AllEvents() []EventID {
	return []EventID{EventDSAMasters, EventCipherville, EventEthitechMania}
}

// EventSelector is the event choice submitted on the registration form:
// one concrete EventID, or the all-events combo.
type EventSelector string

// IsCombo reports whether the selector is the all-events combo.
func (s EventSelector) IsCombo() bool {
	return string(s) == SelectorAllEvents
}

// Valid reports whether the selector is one of the accepted form values.
func (s EventSelector) Valid() bool {
	if s.IsCombo() {
		return true
	}
	for _, id := range AllEvents() {
		if EventID(s) == id {
			return true
		}
	}
	return false
}

// Expand resolves the selector into its target events. The combo expands
// to every concrete event; anything else is a single target.
func (s EventSelector) Expand() []EventID {
	if s.IsCombo() {
		return AllEvents()
	}
	return []EventID{EventID(s)}
}

// EventInfo describes one catalog entry as shown on the registration page.
type EventInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog returns the fixed event catalog, combo entry last.
func Catalog() []EventInfo {
	return []EventInfo{
		{
			ID:          string(EventDSAMasters),
			Name:        "DSA Masters CBIT",
			Description: "A competitive Data Structures & Algorithms event where efficient solutions visually grow a digital ecosystem. Focus: Optimization and algorithmic thinking.",
		},
		{
			ID:          string(EventCipherville),
			Name:        "Cipherville",
			Description: "Two-round mystery hunt. Round 1 features a scavenger hunt with posters and digital clues. Round 2 dives into SQL-based database investigations. Focus: Logical thinking, investigation, analysis.",
		},
		{
			ID:          string(EventEthitechMania),
			Name:        "Ethitech Mania",
			Description: "Test your aptitude and logical reasoning alongside ethical decision-making in tech. Cover core Computer Science fundamentals. Focus: Thinking ability and ethics.",
		},
		{
			ID:          SelectorAllEvents,
			Name:        "All 3 Events (Combo)",
			Description: "Register for DSA Masters, Cipherville and Ethitech Mania in one go.",
		},
	}
}
