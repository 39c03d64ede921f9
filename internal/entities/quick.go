package entities

// QuickCharacter is the output of the quick-generation game system: five
// uniform draws from flat pools, no weighting and no recursive content
type QuickCharacter struct {
	Race    string `json:"race"`
	Faction string `json:"faction"`
	Class   string `json:"class"`
	Deity   string `json:"deity"`
	Ability string `json:"ability"`
}
