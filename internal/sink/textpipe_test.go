package sink

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"hako/internal/analog"
	"hako/internal/command"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func newTestPipe() (*TextPipe, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewTextPipe(nopWriteCloser{&buf}), &buf
}

func TestTextPipePressRelease(t *testing.T) {
	p, buf := newTestPipe()

	require.NoError(t, p.Emit(command.Press(command.A)))
	require.NoError(t, p.Emit(command.Release(command.B)))

	require.Equal(t, "PRESS A\nRELEASE B\n", buf.String())
}

func TestTextPipeSetStickFormula(t *testing.T) {
	p, buf := newTestPipe()

	require.NoError(t, p.Emit(command.SetStick(command.Main, analog.Coord2{X: 80, Y: -80})))

	wantX := 0.5 + 0.5*(80.0/127)
	wantY := 0.5 + 0.5*(-80.0/128)
	require.Equal(t, fmt.Sprintf("SET MAIN %.6f %.6f\n", wantX, wantY), buf.String())
}

func TestTextPipeSetStickNeutralIsCenter(t *testing.T) {
	p, buf := newTestPipe()
	require.NoError(t, p.Emit(command.SetStick(command.C, analog.Coord2{})))
	require.Equal(t, "SET C 0.500000 0.500000\n", buf.String())
}

func TestTextPipeSetTriggerFormula(t *testing.T) {
	p, buf := newTestPipe()

	require.NoError(t, p.Emit(command.SetTrigger(analog.MS)))
	require.Equal(t, fmt.Sprintf("SET L %.6f\n", 94.0/128), buf.String())

	buf.Reset()
	require.NoError(t, p.Emit(command.SetTrigger(0)))
	require.Equal(t, "SET L 0.000000\n", buf.String())
}

func TestTextPipeCloseIsNoOpWhenWrapped(t *testing.T) {
	p, _ := newTestPipe()
	require.NoError(t, p.Close())
}
