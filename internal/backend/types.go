package backend

// Wire shapes for the backend's proxied sports-provider payloads. These
// mirror the upstream JSON exactly and are mapped to domain models in
// mapper.go before leaving this package.

type namedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type wireGameSide struct {
	Team namedRef `json:"team"`
}

type wireGame struct {
	GamePk       int    `json:"gamePk"`
	GameDate     string `json:"gameDate"`
	OfficialDate string `json:"officialDate"`
	Teams        struct {
		Away wireGameSide `json:"away"`
		Home wireGameSide `json:"home"`
	} `json:"teams"`
	Venue namedRef `json:"venue"`
}

type wireScheduleDate struct {
	Date  string     `json:"date"`
	Games []wireGame `json:"games"`
}

type scheduleResponse struct {
	Dates []wireScheduleDate `json:"dates"`
}

type wireTeam struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	LocationName    string   `json:"locationName"`
	Abbreviation    string   `json:"abbreviation"`
	FirstYearOfPlay string   `json:"firstYearOfPlay"`
	Venue           namedRef `json:"venue"`
	League          namedRef `json:"league"`
	Division        namedRef `json:"division"`
}

type teamsResponse struct {
	Teams []wireTeam `json:"teams"`
}

type wireRosterEntry struct {
	Person struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	} `json:"person"`
	Position struct {
		Name string `json:"name"`
	} `json:"position"`
	JerseyNumber string `json:"jerseyNumber"`
}

type teamDetailResponse struct {
	Team   wireTeam          `json:"team"`
	Roster []wireRosterEntry `json:"roster"`
}

type wireHandedness struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type wirePlayer struct {
	ID              int            `json:"id"`
	FullName        string         `json:"fullName"`
	BirthDate       string         `json:"birthDate"`
	CurrentAge      int            `json:"currentAge"`
	PrimaryPosition namedRef       `json:"primaryPosition"`
	Height          string         `json:"height"`
	Weight          int            `json:"weight"`
	MLBDebutDate    string         `json:"mlbDebutDate"`
	BatSide         wireHandedness `json:"batSide"`
	PitchHand       wireHandedness `json:"pitchHand"`
}

type playerResponse struct {
	People []wirePlayer `json:"people"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type favoritesUpdateRequest struct {
	Action    string   `json:"action"`
	TeamNames []string `json:"teamNames"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type triviaQuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type calendarStatusResponse struct {
	Status string `json:"status"`
}

// GameEvent is the calendar-event payload for a scheduled game.
type GameEvent struct {
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
}
