package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hako/internal/analog"
)

func TestConstructors(t *testing.T) {
	require.Equal(t, Command{Kind: KindPress, Button: B}, Press(B))
	require.Equal(t, Command{Kind: KindRelease, Button: Z}, Release(Z))

	coord := analog.Coord2{X: 40, Y: -40}
	require.Equal(t, Command{Kind: KindSetStick, Stick: C, Coord: coord}, SetStick(C, coord))

	require.Equal(t, Command{Kind: KindSetTrigger, Trigger: analog.MS}, SetTrigger(analog.MS))
}

func TestButtonStringMatchesWireVocabulary(t *testing.T) {
	cases := map[Button]string{
		A: "A", B: "B", X: "X", Y: "Y", Z: "Z", L: "L", R: "R",
		Start: "START", DPadUp: "D_UP", DPadDown: "D_DOWN",
		DPadLeft: "D_LEFT", DPadRight: "D_RIGHT",
	}
	for btn, want := range cases {
		require.Equal(t, want, btn.String())
	}
}
