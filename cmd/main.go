package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/lineagechess/lineage/crypto"
	"github.com/lineagechess/lineage/domain/chess"
	"github.com/lineagechess/lineage/ledger"
)

// The demo plays a scripted game between two freshly generated keys and
// verifies the chain after every move. Moves may be overridden on the
// command line as square pairs: lineage e2e4 e7e5 ...
var defaultScript = []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"}

func main() {
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Lin", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("eage", pterm.FgDarkGray.ToStyle()),
	).Render()

	script := defaultScript
	if len(os.Args) > 1 {
		script = os.Args[1:]
	}

	logger.Info("generating keys")
	white := crypto.GenerateKey()
	black := crypto.GenerateKey()

	challenge := ledger.NewChallenge(white.Public(), black.Public())
	chain := ledger.NewGameChain(challenge)

	if err := chain.Accept(white); err != nil {
		logger.Error("white failed to accept", "error", err.Error())
		os.Exit(1)
	}
	if err := chain.Accept(black); err != nil {
		logger.Error("black failed to accept", "error", err.Error())
		os.Exit(1)
	}
	logger.Info("both players accepted the challenge")

	players := [2]*crypto.KeyPair{white, black}
	for i, raw := range script {
		move, err := chess.ParseMove(raw)
		if err != nil {
			logger.Error("bad move in script", "move", raw, "error", err.Error())
			os.Exit(1)
		}
		if err := chain.AppendMove(players[i%2], move); err != nil {
			logger.Error("move rejected", "move", raw, "error", err.Error())
			os.Exit(1)
		}
		if err := chain.Verify(); err != nil {
			logger.Error("chain failed verification", "move", raw, "error", err.Error())
			os.Exit(1)
		}
		logger.Info("move appended", "move", raw, "color", chess.Color(i%2).String())
	}

	position, err := chain.Position()
	if err != nil {
		logger.Error("failed to project position", "error", err.Error())
		os.Exit(1)
	}

	renderGame(chain, position)
	logger.Info("chain verified",
		"moves", len(chain.Moves),
		"bytes", len(chain.Encode()),
		"side to move", position.SideToMove().String())
}
