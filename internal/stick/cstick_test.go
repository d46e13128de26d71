package stick

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hako/internal/analog"
)

func TestCResolveNeutral(t *testing.T) {
	require.Equal(t, analog.Coord2{}, CResolve(CInputs{}))
}

func TestCResolveCardinal(t *testing.T) {
	got := CResolve(CInputs{CX: active(Positive, false)})
	require.Equal(t, analog.Coord2{X: 80}, got)

	got = CResolve(CInputs{CY: active(Negative, false)})
	require.Equal(t, analog.Coord2{Y: -80}, got)
}

func TestCResolveDiagonal(t *testing.T) {
	got := CResolve(CInputs{CX: active(Negative, false), CY: active(Positive, false)})
	require.Equal(t, analog.Coord2{X: -42, Y: 68}, got)
}

func TestCResolveTiltIntoSmashWhenModXAndAYActive(t *testing.T) {
	in := CInputs{ModX: true, CX: active(Positive, false), AYActive: true, AYDir: Negative}
	got := CResolve(in)
	require.Equal(t, analog.Coord2{X: 65, Y: -23}, got)
}

func TestCResolveTiltIntoSmashSuppressedWhenAXAlsoActive(t *testing.T) {
	in := CInputs{ModX: true, CX: active(Positive, false), AXActive: true, AYActive: true, AYDir: Negative}
	got := CResolve(in)
	require.Equal(t, analog.Coord2{X: 80}, got, "AXActive must fall back to the plain cardinal row")
}

func TestCResolveTiltIntoSmashRequiresModX(t *testing.T) {
	in := CInputs{CX: active(Positive, false), AYActive: true, AYDir: Negative}
	got := CResolve(in)
	require.Equal(t, analog.Coord2{X: 80}, got)
}

func TestDPadLatchButtonFor(t *testing.T) {
	require.Equal(t, DPadRight, ButtonFor(true, Positive))
	require.Equal(t, DPadLeft, ButtonFor(true, Negative))
	require.Equal(t, DPadUp, ButtonFor(false, Positive))
	require.Equal(t, DPadDown, ButtonFor(false, Negative))
}

func TestDPadLatchPressReleaseIdempotent(t *testing.T) {
	l := NewDPadLatch()
	require.True(t, l.Press(DPadUp))
	require.False(t, l.Press(DPadUp), "second press of an already-latched button is a no-op")
	require.True(t, l.IsHeld(DPadUp))

	require.True(t, l.Release(DPadUp))
	require.False(t, l.IsHeld(DPadUp))
	require.False(t, l.Release(DPadUp), "releasing an unheld button is a no-op")
}
