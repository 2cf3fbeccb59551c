package midi

import (
	"errors"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// ErrPortsTimeout means the driver did not answer in time (CoreMIDI can hang)
var ErrPortsTimeout = errors.New("midi: timed out listing ports")

// Ports is a snapshot of the available MIDI ports
type Ports struct {
	In  []drivers.In
	Out []drivers.Out
}

// GetPorts lists ports, giving up after timeout
func GetPorts(timeout time.Duration) (Ports, error) {
	ch := make(chan Ports, 1)
	go func() {
		ch <- Ports{In: gomidi.GetInPorts(), Out: gomidi.GetOutPorts()}
	}()

	select {
	case p := <-ch:
		return p, nil
	case <-time.After(timeout):
		return Ports{}, ErrPortsTimeout
	}
}

// Classify guesses the controller type from an input port name
func Classify(name string) ControllerType {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "launchpad") && strings.Contains(name, "midi"):
		return ControllerLaunchpad
	case strings.Contains(name, "launchpad"):
		// DAW and other secondary Launchpad ports
		return ControllerUnknown
	case strings.Contains(name, "through"), strings.Contains(name, "thru"):
		return ControllerUnknown
	case name == "":
		return ControllerUnknown
	default:
		return ControllerKeyboard
	}
}
