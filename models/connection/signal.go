package connection

const (
	CodeCreateGame uint8 = iota
	CodeFire
	CodeRender
	CodeStats
	CodeEndGame
	CodeTerminateGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

// Code is a pointer so that a message without
// "code" is told apart from CodeCreateGame
type Signal struct {
	Code *uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: &code}
}
