package checkersdto

// SessionState is the presenter-facing view of one game.
type SessionState struct {
	GameID      string
	LightName   string
	DarkName    string
	Turn        string
	Status      string
	Outcome     string
	Winner      string
	MoveCount   int
	LastMove    string
	LightPieces int
	DarkPieces  int
	BoardText   string
	BoardImage  []byte
}
