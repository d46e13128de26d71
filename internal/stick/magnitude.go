package stick

import "hako/internal/analog"

// Named magnitude constants, each expressed as its percentage of
// MaxRadius (80) the way the original implementation named its own
// P-prefixed percentage constants, so a reviewer can see at a glance
// which in-game "angle zone" a magnitude targets rather than reading a
// bare integer.
const (
	p10000 analog.Coord = 80 // 100.00%
	p8750  analog.Coord = 70 // 87.50%
	p8500  analog.Coord = 68 // 85.00%
	p8125  analog.Coord = 65 // 81.25%
	p7875  analog.Coord = 63 // 78.75%
	p7625  analog.Coord = 61 // 76.25%
	p7375  analog.Coord = 59 // 73.75%
	p7125  analog.Coord = 57 // 71.25%
	p7000  analog.Coord = 56 // 70.00%
	p6875  analog.Coord = 55 // 68.75%
	p6625  analog.Coord = 53 // 66.25%
	p6375  analog.Coord = 51 // 63.75%
	p6125  analog.Coord = 49 // 61.25%
	p5375  analog.Coord = 43 // 53.75%
	p5250  analog.Coord = 42 // 52.50%
	p5125  analog.Coord = 41 // 51.25%
	p5000  analog.Coord = 40 // 50.00%
	p4875  analog.Coord = 39 // 48.75%
	p4750  analog.Coord = 38 // 47.50%
	p3750  analog.Coord = 30 // 37.50%
	p3625  analog.Coord = 29 // 36.25%
	p3375  analog.Coord = 27 // 33.75%
	p3250  analog.Coord = 26 // 32.50% (unused placeholder retained for table symmetry)
	p3125  analog.Coord = 25 // 31.25%
	p2875  analog.Coord = 23 // 28.75%
	p0     analog.Coord = 0
)
