package api

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

// Long fleet payloads fit easily in one line of this size
const maxLineSize = 64 * 1024

// RequestProcessor drives games from a stream of JSON messages,
// one per line, and writes one JSON response per line.
type RequestProcessor struct {
	gameManager mb.GameManager
	in          io.Reader
	out         *json.Encoder
}

func NewRequestProcessor(gameManager mb.GameManager, in io.Reader, out io.Writer) *RequestProcessor {
	return &RequestProcessor{
		gameManager: gameManager,
		in:          in,
		out:         json.NewEncoder(out),
	}
}

// Reads lines on its own goroutine so that Run can
// return as soon as the context is cancelled.
func (rp *RequestProcessor) readLines(ctx context.Context) (<-chan []byte, <-chan error) {
	lines := make(chan []byte)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(rp.in)
		scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

		for scanner.Scan() {
			line := make([]byte, len(scanner.Bytes()))
			copy(line, scanner.Bytes())

			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// Run processes messages until the input ends or ctx is cancelled.
func (rp *RequestProcessor) Run(ctx context.Context) error {
	lines, errc := rp.readLines(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case payload, ok := <-lines:
			if !ok {
				return <-errc
			}
			if len(payload) == 0 {
				continue
			}

			if err := rp.process(payload); err != nil {
				return err
			}
		}
	}
}

// Only a failed write to the output ends the loop.
func (rp *RequestProcessor) process(payload []byte) error {
	var signal mc.Signal

	if err := json.Unmarshal(payload, &signal); err != nil || signal.Code == nil {
		log.Printf("incoming msg does not contain 'code': %s\n", payload)
		msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
		msg.AddError("incoming req payload must contain 'code' field", "")
		return rp.out.Encode(msg)
	}

	switch *signal.Code {

	case mc.CodeCreateGame:
		_, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager)
		return rp.out.Encode(respMsg)

	// A shot that destroys the last ship is followed
	// by an end game message for the same game
	case mc.CodeFire:
		game, respMsg := NewRequest(payload).HandleFire(rp.gameManager)
		if err := rp.out.Encode(respMsg); err != nil {
			return err
		}

		if respMsg.Error == nil && respMsg.Payload.IsGameOver {
			respEndGame := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
			respEndGame.AddPayload(mc.RespEndGame{GameUuid: game.Uuid(), Shots: game.Stats().Shots})
			return rp.out.Encode(respEndGame)
		}
		return nil

	case mc.CodeRender:
		return rp.out.Encode(NewRequest(payload).HandleRender(rp.gameManager))

	case mc.CodeStats:
		return rp.out.Encode(NewRequest(payload).HandleStats(rp.gameManager))

	case mc.CodeTerminateGame:
		return rp.out.Encode(NewRequest(payload).HandleTerminateGame(rp.gameManager))

	default:
		respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
		respInvalidSignal.AddError("", "invalid code in the incoming payload")
		return rp.out.Encode(respInvalidSignal)
	}
}
