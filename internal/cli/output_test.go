package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebgh/turingdeck/internal/session"
)

func TestRenderInfo(t *testing.T) {
	g := &session.Game{
		ID:        "ABC123DEF",
		Code:      "123",
		Criterias: []int{1, 5, 16, 21},
		Verifiers: []string{"A", "B", "", "D"},
		Laws:      []int{1, 2, 1, 2},
	}
	require.True(t, g.Valid())

	board := session.NewBoard(g.Criterias)
	board.Toggle(0) // excluded
	board.Toggle(3)
	board.Toggle(3) // included

	tools := session.NewTools()
	for _, cell := range []int{1, 2, 3, 4} {
		tools.Digits[cell] = session.MarkExcluded
	}
	tools.Digits[6] = session.MarkIncluded

	tools.AddRound(4)
	require.NoError(t, tools.SetProposalDigit(0, 1))
	require.NoError(t, tools.SetProposalDigit(1, 2))
	require.NoError(t, tools.ToggleCard(2))
	require.NoError(t, tools.RecordVerification(3, true))
	tools.Lock()
	tools.AppendSolution("123", false)

	var buf bytes.Buffer
	renderGame(&buf, g)
	renderBoard(&buf, g, board)
	renderDigits(&buf, tools)
	renderLedger(&buf, tools)

	gold := goldie.New(t)
	gold.Assert(t, "info", buf.Bytes())
}

func TestRenderLedger_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderLedger(&buf, session.NewTools())
	assert.Equal(t, "no rounds yet\n", buf.String())
}

func TestProposalString(t *testing.T) {
	r := &session.Round{Proposal: [3]int{1, 0, 5}}
	assert.Equal(t, "1?5", proposalString(r))

	r.Proposal = [3]int{2, 4, 5}
	assert.Equal(t, "245", proposalString(r))
}

func TestMarkGlyph(t *testing.T) {
	assert.Equal(t, "[ ]", markGlyph(session.MarkUnset))
	assert.Equal(t, "[x]", markGlyph(session.MarkExcluded))
	assert.Equal(t, "[o]", markGlyph(session.MarkIncluded))
}
