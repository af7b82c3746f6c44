package players

// Handedness describes bat side or pitch hand.
type Handedness struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Player represents the normalized player shape fetched per player id.
type Player struct {
	ID              int        `json:"id"`
	FullName        string     `json:"fullName"`
	BirthDate       string     `json:"birthDate"`
	CurrentAge      int        `json:"currentAge"`
	PrimaryPosition string     `json:"primaryPosition"`
	Height          string     `json:"height"`
	Weight          int        `json:"weight"`
	MLBDebutDate    string     `json:"mlbDebutDate"`
	BatSide         Handedness `json:"batSide"`
	PitchHand       Handedness `json:"pitchHand"`
}
