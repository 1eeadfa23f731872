package quiz

// advanceMsg moves past the current question once its answer has been read.
type advanceMsg struct{}

// endEarlyMsg ends the session from the quit confirmation.
type endEarlyMsg struct{}
