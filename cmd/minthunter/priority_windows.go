//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

const (
	highPriorityClass        = 0x00000080
	aboveNormalPriorityClass = 0x00008000

	processPowerThrottling               = 4
	processPowerThrottlingExecutionSpeed = 0x1
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentProcess     = kernel32.NewProc("GetCurrentProcess")
	procSetPriorityClass      = kernel32.NewProc("SetPriorityClass")
	procSetProcessInformation = kernel32.NewProc("SetProcessInformation")
)

// raisePriority moves the process to HIGH_PRIORITY_CLASS (ABOVE_NORMAL when
// that is refused) and turns off power throttling so the worker pool is
// not parked on efficiency cores. REALTIME is avoided, it can freeze the
// desktop.
func raisePriority() error {
	handle, _, _ := procGetCurrentProcess.Call()

	if ret, _, _ := procSetPriorityClass.Call(handle, highPriorityClass); ret == 0 {
		if ret, _, err := procSetPriorityClass.Call(handle, aboveNormalPriorityClass); ret == 0 {
			return err
		}
	}
	return disablePowerThrottling(handle)
}

// disablePowerThrottling needs Windows 10 1709 or later.
func disablePowerThrottling(handle uintptr) error {
	type powerThrottlingState struct {
		Version     uint32
		ControlMask uint32
		StateMask   uint32
	}
	state := powerThrottlingState{
		Version:     1,
		ControlMask: processPowerThrottlingExecutionSpeed,
		StateMask:   0,
	}

	ret, _, err := procSetProcessInformation.Call(
		handle,
		processPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	)
	if ret == 0 {
		return err
	}
	return nil
}
