package messages

// LevelEvents carries the gameplay events of one server tick. Events are
// level.Event values.
type LevelEvents struct {
	Tick   int
	Events []int
}

// LevelFinished is broadcast when a level is won or lost, before the server
// loads the next one.
type LevelFinished struct {
	Level   string
	Outcome int
	Score   int
	Next    string
}
