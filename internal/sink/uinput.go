package sink

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"hako/internal/command"
	"hako/internal/evdev"
)

// constants from linux/uinput.h. Declared directly, the way the
// teacher declares its own raw I2C ioctl/register constants, rather
// than pulled from a higher-level gamepad-emulation library — none of
// the retrieved examples carry one.
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetPropBit = 0x4004556e
	uiDevSetup   = 0x405c5503
	uiAbsSetup   = 0x401c5505

	inputPropButtonpad = 0x02

	busUSB            = 0x03
	uinputMaxNameSize = 80
)

// absInfo mirrors struct input_absinfo, embedded in uinput_abs_setup.
type absInfo struct {
	Value, Minimum, Maximum, Fuzz, Flat, Resolution int32
}

// uinputAbsSetup mirrors struct uinput_abs_setup (linux/uinput.h).
type uinputAbsSetup struct {
	Code uint16
	_    [2]byte // alignment padding before the embedded absInfo
	Abs  absInfo
}

// uinputSetup mirrors struct uinput_setup (linux/uinput.h).
type uinputSetup struct {
	Bus     uint16
	Vendor  uint16
	Product uint16
	Version uint16
	Name    [uinputMaxNameSize]byte

	FFEffectsMax uint32
}

// VirtualDevice is the virtual-device sink of §6: a uinput gamepad
// named "hako" with the button/axis capability set §6 specifies.
// Raw ioctl calls are used directly, grounded on the same
// syscall.SYS_IOCTL pattern the teacher's I2C driver uses for its own
// device setup, through the safer x/sys/unix wrappers.
type VirtualDevice struct {
	fd int
}

// OpenVirtualDevice creates and registers the "hako" uinput device.
func OpenVirtualDevice(devPath string) (*VirtualDevice, error) {
	if devPath == "" {
		devPath = "/dev/uinput"
	}
	fd, err := unix.Open(devPath, unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s: %w", devPath, err)
	}
	d := &VirtualDevice{fd: fd}
	if err := d.setup(); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return d, nil
}

func (d *VirtualDevice) setup() error {
	if err := d.ioctl(uiSetEvBit, uintptr(evdev.EvKey)); err != nil {
		return err
	}
	for _, b := range []uintptr{
		evdev.BtnSouth, evdev.BtnEast, evdev.BtnNorth, evdev.BtnWest, evdev.BtnZ, evdev.BtnTL, evdev.BtnTR, evdev.BtnStart,
		evdev.BtnDpadUp, evdev.BtnDpadDown, evdev.BtnDpadLeft, evdev.BtnDpadRight,
	} {
		if err := d.ioctl(uiSetKeyBit, b); err != nil {
			return err
		}
	}
	if err := d.ioctl(uiSetEvBit, uintptr(evdev.EvAbs)); err != nil {
		return err
	}
	if err := d.ioctl(uiSetPropBit, uintptr(inputPropButtonpad)); err != nil {
		return err
	}

	for _, axis := range []struct {
		code     uint16
		min, max int32
	}{
		{evdev.AbsX, -127, 127}, {evdev.AbsY, -127, 127}, {evdev.AbsRX, -127, 127}, {evdev.AbsRY, -127, 127},
		{evdev.AbsZ, 0, 255}, {evdev.AbsRZ, 0, 255},
	} {
		setup := uinputAbsSetup{Code: axis.code, Abs: absInfo{Minimum: axis.min, Maximum: axis.max}}
		if err := d.ioctlPtr(uiAbsSetup, unsafe.Pointer(&setup)); err != nil {
			return err
		}
	}

	var dev uinputSetup
	dev.Bus = busUSB
	dev.Vendor = 0x0001
	dev.Product = 0x0001
	dev.Version = 1
	copy(dev.Name[:], "hako")
	if err := d.ioctlPtr(uiDevSetup, unsafe.Pointer(&dev)); err != nil {
		return err
	}

	return d.ioctl(uiDevCreate, 0)
}

func (d *VirtualDevice) ioctl(req, arg uintptr) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, arg); errno != 0 {
		return errno
	}
	return nil
}

func (d *VirtualDevice) ioctlPtr(req uintptr, p unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(p)); errno != 0 {
		return errno
	}
	return nil
}

func (d *VirtualDevice) write(typ, code uint16, value int32) error {
	ev := evdev.Event{Type: typ, Code: code, Value: value}
	buf := (*[unsafe.Sizeof(evdev.Event{})]byte)(unsafe.Pointer(&ev))[:]
	_, err := unix.Write(d.fd, buf)
	return err
}

func (d *VirtualDevice) sync() error {
	return d.write(evdev.EvSyn, evdev.SynReport, 0)
}

// Emit expands cmd into the kernel event sequence of §4.7: stick sets
// emit X then Y plus one sync; presses/releases emit one key event
// plus sync; triggers emit one absolute-axis event plus sync.
// Timestamps are left zero, per §4.7.
func (d *VirtualDevice) Emit(cmd command.Command) error {
	switch cmd.Kind {
	case command.KindPress, command.KindRelease:
		v := int32(evdev.KeyRelease)
		if cmd.Kind == command.KindPress {
			v = evdev.KeyPress
		}
		if err := d.write(evdev.EvKey, keyCodeFor(cmd.Button), v); err != nil {
			return err
		}
		return d.sync()
	case command.KindSetStick:
		xCode, yCode := uint16(evdev.AbsX), uint16(evdev.AbsY)
		if cmd.Stick == command.C {
			xCode, yCode = evdev.AbsRX, evdev.AbsRY
		}
		if err := d.write(evdev.EvAbs, xCode, int32(cmd.Coord.X.Int())); err != nil {
			return err
		}
		if err := d.write(evdev.EvAbs, yCode, int32(cmd.Coord.Y.Int())); err != nil {
			return err
		}
		return d.sync()
	case command.KindSetTrigger:
		// §6/§4.3: shield trigger commands always target the left
		// trigger axis (Z).
		if err := d.write(evdev.EvAbs, evdev.AbsZ, int32(cmd.Trigger.Int())); err != nil {
			return err
		}
		return d.sync()
	}
	return nil
}

func (d *VirtualDevice) Close() error {
	_ = d.ioctl(uiDevDestroy, 0)
	return unix.Close(d.fd)
}

func keyCodeFor(b command.Button) uint16 {
	switch b {
	case command.A:
		return evdev.BtnSouth
	case command.B:
		return evdev.BtnEast
	case command.X:
		return evdev.BtnNorth
	case command.Y:
		return evdev.BtnWest
	case command.Z:
		return evdev.BtnZ
	case command.L:
		return evdev.BtnTL
	case command.R:
		return evdev.BtnTR
	case command.Start:
		return evdev.BtnStart
	case command.DPadUp:
		return evdev.BtnDpadUp
	case command.DPadDown:
		return evdev.BtnDpadDown
	case command.DPadLeft:
		return evdev.BtnDpadLeft
	case command.DPadRight:
		return evdev.BtnDpadRight
	default:
		return evdev.BtnSouth
	}
}
