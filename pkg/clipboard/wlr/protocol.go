//go:build linux

package wlr

import (
	"fmt"
	"os"

	wl "deedles.dev/wl/client"
	"deedles.dev/wl/wire"
)

// Read-only subset of wlr-data-control-unstable-v1.

const (
	managerInterface = "zwlr_data_control_manager_v1"
	managerVersion   = 2

	deviceInterface = "zwlr_data_control_device_v1"
	deviceVersion   = 2

	offerInterface = "zwlr_data_control_offer_v1"
	offerVersion   = 1
)

type dataControlManager struct {
	state wire.State
	id    uint32
}

func bindManager(state wire.State, registry wire.Binder, name, version uint32) *dataControlManager {
	obj := &dataControlManager{state: state}
	state.Add(obj)
	registry.Bind(name, wire.NewID{Interface: managerInterface, Version: min(version, managerVersion), ID: obj.ID()})
	return obj
}

func (obj *dataControlManager) State() wire.State { return obj.state }
func (obj *dataControlManager) ID() uint32        { return obj.id }
func (obj *dataControlManager) SetID(id uint32)   { obj.id = id }
func (obj *dataControlManager) Delete()           {}
func (obj *dataControlManager) Interface() string { return managerInterface }
func (obj *dataControlManager) Version() uint32   { return managerVersion }

func (obj *dataControlManager) String() string {
	return fmt.Sprintf("%v(%v)", managerInterface, obj.id)
}

func (obj *dataControlManager) MethodName(uint16) string {
	return "unknown method"
}

func (obj *dataControlManager) Dispatch(msg *wire.MessageBuffer) error {
	return wire.UnknownOpError{Interface: managerInterface, Type: "event", Op: msg.Op()}
}

// GetDataDevice creates the device reporting selections of seat.
func (obj *dataControlManager) GetDataDevice(seat *wl.Seat) *dataControlDevice {
	builder := wire.NewMessage(obj, 1)

	dev := &dataControlDevice{state: obj.state}
	obj.state.Add(dev)
	builder.WriteObject(dev)
	builder.WriteObject(seat)

	builder.Method = "get_data_device"
	builder.Args = []any{dev, seat}
	obj.state.Enqueue(builder)
	return dev
}

func (obj *dataControlManager) Destroy() {
	builder := wire.NewMessage(obj, 2)
	builder.Method = "destroy"
	obj.state.Enqueue(builder)
}

type deviceListener interface {
	// DataOffer introduces an offer, its mime types follow before Selection.
	DataOffer(offer *dataControlOffer)
	Selection(offer *dataControlOffer)
	// Finished reports the device is no longer valid.
	Finished()
	PrimarySelection(offer *dataControlOffer)
}

type dataControlDevice struct {
	Listener deviceListener

	state wire.State
	id    uint32
}

func (obj *dataControlDevice) State() wire.State { return obj.state }
func (obj *dataControlDevice) ID() uint32        { return obj.id }
func (obj *dataControlDevice) SetID(id uint32)   { obj.id = id }
func (obj *dataControlDevice) Delete()           {}
func (obj *dataControlDevice) Interface() string { return deviceInterface }
func (obj *dataControlDevice) Version() uint32   { return deviceVersion }

func (obj *dataControlDevice) String() string {
	return fmt.Sprintf("%v(%v)", deviceInterface, obj.id)
}

func (obj *dataControlDevice) MethodName(op uint16) string {
	switch op {
	case 0:
		return "data_offer"
	case 1:
		return "selection"
	case 2:
		return "finished"
	case 3:
		return "primary_selection"
	}

	return "unknown method"
}

func (obj *dataControlDevice) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		offer := &dataControlOffer{state: obj.state}
		offer.SetID(msg.ReadUint())
		obj.state.Add(offer)

		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.DataOffer(offer)
		}
		return nil

	case 1, 3:
		// a null offer clears the selection and is not looked up
		offer, _ := obj.state.Get(msg.ReadUint()).(*dataControlOffer)

		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener == nil {
			return nil
		}
		if msg.Op() == 1 {
			obj.Listener.Selection(offer)
		} else {
			obj.Listener.PrimarySelection(offer)
		}
		return nil

	case 2:
		if err := msg.Err(); err != nil {
			return err
		}
		if obj.Listener != nil {
			obj.Listener.Finished()
		}
		return nil
	}

	return wire.UnknownOpError{Interface: deviceInterface, Type: "event", Op: msg.Op()}
}

func (obj *dataControlDevice) Destroy() {
	builder := wire.NewMessage(obj, 1)
	builder.Method = "destroy"
	obj.state.Enqueue(builder)
}

type offerListener interface {
	// Offer is sent once per offered mime type.
	Offer(mimeType string)
}

type dataControlOffer struct {
	Listener offerListener

	state wire.State
	id    uint32
}

func (obj *dataControlOffer) State() wire.State { return obj.state }
func (obj *dataControlOffer) ID() uint32        { return obj.id }
func (obj *dataControlOffer) SetID(id uint32)   { obj.id = id }
func (obj *dataControlOffer) Delete()           {}
func (obj *dataControlOffer) Interface() string { return offerInterface }
func (obj *dataControlOffer) Version() uint32   { return offerVersion }

func (obj *dataControlOffer) String() string {
	return fmt.Sprintf("%v(%v)", offerInterface, obj.id)
}

func (obj *dataControlOffer) MethodName(op uint16) string {
	if op == 0 {
		return "offer"
	}
	return "unknown method"
}

func (obj *dataControlOffer) Dispatch(msg *wire.MessageBuffer) error {
	if msg.Op() != 0 {
		return wire.UnknownOpError{Interface: offerInterface, Type: "event", Op: msg.Op()}
	}

	mimeType := msg.ReadString()
	if err := msg.Err(); err != nil {
		return err
	}
	if obj.Listener != nil {
		obj.Listener.Offer(mimeType)
	}
	return nil
}

// Receive asks the source to write mimeType into fd and close it.
func (obj *dataControlOffer) Receive(mimeType string, fd *os.File) {
	builder := wire.NewMessage(obj, 0)
	builder.WriteString(mimeType)
	builder.WriteFile(fd)

	builder.Method = "receive"
	builder.Args = []any{mimeType, fd}
	obj.state.Enqueue(builder)
}

func (obj *dataControlOffer) Destroy() {
	builder := wire.NewMessage(obj, 1)
	builder.Method = "destroy"
	obj.state.Enqueue(builder)
}
