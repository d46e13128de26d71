package translator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hako/internal/analog"
	"hako/internal/command"
	"hako/internal/keymap"
)

var epoch = time.Unix(0, 0)

func handle(t *testing.T, tr *Translator, in keymap.Input, pressed bool) []command.Command {
	t.Helper()
	return tr.HandleEvent(in, pressed, epoch)
}

// TestS1ShieldLayering mirrors §8 S1: the shield trigger sequence
// 49, 94, 49, 0.
func TestS1ShieldLayering(t *testing.T) {
	tr := New(Config{})

	cmds := handle(t, tr, keymap.InputLightShield, true)
	require.Equal(t, []command.Command{command.SetTrigger(analog.LS)}, cmds)

	cmds = handle(t, tr, keymap.InputMediumShield, true)
	require.Equal(t, []command.Command{command.SetTrigger(analog.MS)}, cmds)

	cmds = handle(t, tr, keymap.InputMediumShield, false)
	require.Equal(t, []command.Command{command.SetTrigger(analog.LS)}, cmds)

	cmds = handle(t, tr, keymap.InputLightShield, false)
	require.Equal(t, []command.Command{command.SetTrigger(0)}, cmds)
}

// TestS3ModifierCardinal mirrors §8 S3.
func TestS3ModifierCardinal(t *testing.T) {
	tr := New(Config{})

	handle(t, tr, keymap.InputModX, true)

	cmds := handle(t, tr, keymap.InputAXPos, true)
	require.Equal(t, []command.Command{command.SetStick(command.Main, analog.Coord2{X: 53, Y: 0})}, cmds)

	cmds = handle(t, tr, keymap.InputModX, false)
	require.Equal(t, []command.Command{command.SetStick(command.Main, analog.Coord2{X: 80, Y: 0})}, cmds)

	cmds = handle(t, tr, keymap.InputAXPos, false)
	require.Equal(t, []command.Command{command.SetStick(command.Main, analog.Coord2{X: 0, Y: 0})}, cmds)
}

// TestS4ModXCCardinalDiagonal mirrors §8 S4's magnitude and ordering
// claims (the final A-stick sign in the spec's prose appears to
// contradict its own "sign(A.Y)·|y|" formula; this test follows the
// formula, see DESIGN.md).
func TestS4ModXCCardinalDiagonal(t *testing.T) {
	tr := New(Config{})

	handle(t, tr, keymap.InputModX, true)
	handle(t, tr, keymap.InputAXPos, true)
	cmds := handle(t, tr, keymap.InputAYPos, true)
	require.Equal(t, []command.Command{command.SetStick(command.Main, analog.Coord2{X: 59, Y: 25})}, cmds)

	cmds = handle(t, tr, keymap.InputCYNeg, true)
	require.Len(t, cmds, 2)
	require.Equal(t, command.SetStick(command.C, analog.Coord2{X: 0, Y: -80}), cmds[0])
	require.Equal(t, command.Main, cmds[1].Stick)
	require.Equal(t, analog.Coord(56), cmds[1].Coord.X)
	require.Equal(t, analog.Coord(29), cmds[1].Coord.Y)
}

// TestS5DPadLatch mirrors §8 S5.
func TestS5DPadLatch(t *testing.T) {
	tr := New(Config{})

	handle(t, tr, keymap.InputModX, true)
	handle(t, tr, keymap.InputModY, true)

	cmds := handle(t, tr, keymap.InputCXPos, true)
	require.Equal(t, []command.Command{command.Press(command.DPadRight)}, cmds)

	cmds = handle(t, tr, keymap.InputModY, false)
	require.Empty(t, cmds)

	cmds = handle(t, tr, keymap.InputCXPos, false)
	require.Equal(t, []command.Command{command.Release(command.DPadRight)}, cmds)
}

// TestS6ImpureButtonDiffsAStick mirrors §8 S6: A.X Pos held + ModY
// held gives A-stick (27,0); pressing B then emits SET MAIN (53,0)
// followed by PRESS B.
func TestS6ImpureButtonDiffsAStick(t *testing.T) {
	tr := New(Config{})

	cmds := handle(t, tr, keymap.InputAXPos, true)
	require.Equal(t, []command.Command{command.SetStick(command.Main, analog.Coord2{X: 80, Y: 0})}, cmds)

	cmds = handle(t, tr, keymap.InputModY, true)
	require.Equal(t, []command.Command{command.SetStick(command.Main, analog.Coord2{X: 27, Y: 0})}, cmds)

	cmds = handle(t, tr, keymap.InputB, true)
	require.Equal(t, []command.Command{
		command.SetStick(command.Main, analog.Coord2{X: 53, Y: 0}),
		command.Press(command.B),
	}, cmds)
}

// TestPureButtonRoundTrip mirrors §8's round-trip law: press/release of
// any lone pure button returns to the initial output state.
func TestPureButtonRoundTrip(t *testing.T) {
	tr := New(Config{})
	cmds := handle(t, tr, keymap.InputA, true)
	require.Equal(t, []command.Command{command.Press(command.A)}, cmds)
	cmds = handle(t, tr, keymap.InputA, false)
	require.Equal(t, []command.Command{command.Release(command.A)}, cmds)
}

func TestJumpDelayDefersPress(t *testing.T) {
	tr := New(Config{JumpDelay: 10 * time.Millisecond, JumpInput: keymap.InputX})

	cmds := handle(t, tr, keymap.InputX, true)
	require.Empty(t, cmds, "press must be deferred, not emitted immediately")

	_, armed := tr.TimerDeadline()
	require.True(t, armed)

	cmds = tr.FireTimer()
	require.Equal(t, []command.Command{command.Press(command.X)}, cmds)
}

func TestJumpDelayReleaseWithinWindowFiresAfterPress(t *testing.T) {
	tr := New(Config{JumpDelay: 10 * time.Millisecond, JumpInput: keymap.InputX})

	handle(t, tr, keymap.InputX, true)
	cmds := handle(t, tr, keymap.InputX, false)
	require.Empty(t, cmds)

	cmds = tr.FireTimer()
	require.Equal(t, []command.Command{command.Press(command.X), command.Release(command.X)}, cmds)
}
