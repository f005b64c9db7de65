package main

import (
	"encoding/hex"

	"github.com/pterm/pterm"

	"github.com/lineagechess/lineage/domain/chess"
	"github.com/lineagechess/lineage/ledger"
)

func renderGame(chain *ledger.GameChain, position chess.Position) {
	panels := pterm.Panels{{getBoardPanel(position), getChainPanel(chain)}}
	_ = pterm.DefaultPanel.WithPanels(panels).Render()
}

func getBoardPanel(position chess.Position) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|BOARD|")).WithTitleTopCenter().Sprint(position.Render())}
}

func getChainPanel(chain *ledger.GameChain) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("challenge + 2 accepts + %d moves", len(chain.Moves))
	for i, move := range chain.Moves {
		info += pterm.Sprintfln("%2d. %s%s  sig %s", i+1,
			chess.SquareName(move.Start), chess.SquareName(move.End),
			hex.EncodeToString(move.Signature[:4]))
	}
	info += pterm.Sprintfln("encoded: %d bytes", len(chain.Encode()))
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|CHAIN|")).WithTitleTopCenter().Sprint(info)}
}
