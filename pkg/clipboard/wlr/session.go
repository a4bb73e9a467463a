//go:build linux

package wlr

import (
	"errors"
	"fmt"

	wl "deedles.dev/wl/client"
	"github.com/rs/zerolog"
)

var (
	errNoSeat     = errors.New("no seat found")
	errNoManager  = errors.New("compositor does not support " + managerInterface)
	errFinished   = errors.New("data control device finished")
	errTooLarge   = errors.New("clipboard data exceeded limit")
	errNoSelected = errors.New("offer is not the current selection")
)

// session is one compositor connection bound to the data control device of the first seat.
// It is not safe for concurrent use.
type session struct {
	client   *wl.Client
	registry *wl.Registry
	seat     *wl.Seat
	manager  *dataControlManager
	device   *dataControlDevice
	logger   zerolog.Logger

	pending   map[*dataControlOffer]*offer
	selection *offer
	primary   *dataControlOffer
	finished  bool

	// called for every selection after open returns
	onSelection func(*offer)
}

func open(logger zerolog.Logger) (*session, error) {
	client, err := wl.Dial()
	if err != nil {
		return nil, fmt.Errorf("wayland dial: %w", err)
	}

	s := &session{
		client:  client,
		logger:  logger,
		pending: make(map[*dataControlOffer]*offer),
	}
	if err := s.setup(); err != nil {
		s.close()
		return nil, err
	}

	return s, nil
}

func (s *session) setup() error {
	s.registry = s.client.Display().GetRegistry()
	s.registry.Listener = s

	if err := s.client.RoundTrip(); err != nil {
		return fmt.Errorf("round trip: %w", err)
	}
	if s.seat == nil {
		return errNoSeat
	}
	if s.manager == nil {
		return errNoManager
	}

	s.device = s.manager.GetDataDevice(s.seat)
	s.device.Listener = s

	// the compositor answers the device with the current selection
	if err := s.client.RoundTrip(); err != nil {
		return fmt.Errorf("round trip: %w", err)
	}

	return nil
}

func (s *session) Global(name uint32, inter string, version uint32) {
	switch inter {
	case wl.SeatInterface:
		if s.seat == nil {
			s.seat = wl.BindSeat(s.client, s.registry, name, version)
		}
	case managerInterface:
		s.manager = bindManager(s.client, s.registry, name, version)
	}
}

func (s *session) GlobalRemove(uint32) {}

func (s *session) DataOffer(o *dataControlOffer) {
	off := &offer{s: s, src: o}
	o.Listener = off
	s.pending[o] = off
}

func (s *session) Selection(o *dataControlOffer) {
	if s.selection != nil {
		s.selection.src.Destroy()
		s.selection = nil
	}
	if o == nil {
		s.logger.Trace().Msg("selection cleared")
		return
	}

	s.selection = s.pending[o]
	delete(s.pending, o)
	if s.selection == nil {
		return
	}

	s.logger.Trace().Strs("mimes", s.selection.mimes).Msg("selection received")
	if s.onSelection != nil {
		s.onSelection(s.selection)
	}
}

func (s *session) PrimarySelection(o *dataControlOffer) {
	if s.primary != nil {
		s.primary.Destroy()
	}

	s.primary = o
	delete(s.pending, o)
}

func (s *session) Finished() {
	s.finished = true
}

func (s *session) close() {
	if s.selection != nil {
		s.selection.src.Destroy()
	}
	if s.primary != nil {
		s.primary.Destroy()
	}
	if s.device != nil {
		s.device.Destroy()
	}
	if s.manager != nil {
		s.manager.Destroy()
	}

	if err := s.client.Close(); err != nil {
		s.logger.Debug().Err(err).Msg("failed to close wayland client")
	}
}
