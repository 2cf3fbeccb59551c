package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"staff-trainer/debug"

	"gitlab.com/gomidi/midi/v2/drivers"
)

// DeviceEvent is emitted when controllers connect/disconnect
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager handles hot-plug detection of MIDI controllers
type DeviceManager struct {
	controllers map[string]Controller
	mu          sync.RWMutex
	events      chan DeviceEvent
	pollRate    time.Duration

	// overridable in tests
	inputs func() ([]Input, error)
	open   func(in Input) (Controller, error)
}

// Input is a candidate controller: an input port, its kind, and for
// Launchpads the output port of the same name
type Input struct {
	Name string
	Kind ControllerType
	In   drivers.In
	Out  drivers.Out
}

// NewDeviceManager creates a device manager polling every pollRate
func NewDeviceManager(pollRate time.Duration) *DeviceManager {
	if pollRate <= 0 {
		pollRate = time.Second
	}
	return &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		pollRate:    pollRate,
		inputs:      scanInputs,
		open:        openController,
	}
}

func scanInputs() ([]Input, error) {
	ports, err := GetPorts(3 * time.Second)
	if err != nil {
		return nil, err
	}
	return ports.Inputs(), nil
}

// Inputs pairs each recognised input port with its kind and output
func (p Ports) Inputs() []Input {
	var inputs []Input
	for _, in := range p.In {
		name := in.String()
		kind := Classify(name)
		if kind == ControllerUnknown {
			continue
		}
		input := Input{Name: name, Kind: kind, In: in}
		if kind == ControllerLaunchpad {
			input.Out = matchingOut(name, p.Out)
		}
		inputs = append(inputs, input)
	}
	return inputs
}

func openController(in Input) (Controller, error) {
	if in.Kind == ControllerLaunchpad {
		return NewLaunchpadController(in.Name, in.In, in.Out)
	}
	return NewKeyboardController(in.Name, in.In)
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// connected returns a snapshot of connected controllers
func (dm *DeviceManager) connected() map[string]Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	snapshot := make(map[string]Controller, len(dm.controllers))
	for k, v := range dm.controllers {
		snapshot[k] = v
	}
	return snapshot
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	inputs, err := dm.inputs()
	if err != nil {
		// User needs to run: sudo killall coreaudiod midiserver
		debug.L().Warn("skipping midi scan", zap.Error(err))
		return
	}

	seen := make(map[string]bool)
	for _, in := range inputs {
		id := in.Name
		seen[id] = true

		dm.mu.RLock()
		_, exists := dm.controllers[id]
		dm.mu.RUnlock()
		if exists {
			continue
		}

		c, err := dm.open(in)
		if err != nil {
			debug.L().Warn("open controller", zap.String("id", id), zap.Stringer("type", in.Kind), zap.Error(err))
			continue
		}

		dm.mu.Lock()
		dm.controllers[id] = c
		dm.mu.Unlock()

		debug.L().Info("controller connected", zap.String("id", id), zap.Stringer("type", in.Kind))
		dm.events <- DeviceEvent{Type: DeviceConnected, Controller: c, ID: id}
	}

	dm.mu.Lock()
	var gone []string
	for id := range dm.controllers {
		if !seen[id] {
			gone = append(gone, id)
		}
	}
	for _, id := range gone {
		dm.controllers[id].Close()
		delete(dm.controllers, id)
		debug.L().Info("controller disconnected", zap.String("id", id))
		dm.events <- DeviceEvent{Type: DeviceDisconnected, ID: id}
	}
	dm.mu.Unlock()
}

func matchingOut(name string, outs []drivers.Out) drivers.Out {
	name = strings.ToLower(name)
	for _, op := range outs {
		if strings.ToLower(op.String()) == name {
			return op
		}
	}
	return nil
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}
