package x11

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xfixes"
	"github.com/jezek/xgb/xproto"
)

const (
	maxPropSize = 0x10000
	maxDataSize = 50 * 1024 * 1024

	xFixesClientMajor = 5
	xFixesClientMinor = 0

	convertTimeout = time.Second
	pollInterval   = 5 * time.Millisecond
)

var (
	errClosed   = errors.New("x11 connection closed")
	errRefused  = errors.New("selection owner refused conversion")
	errTimeout  = errors.New("selection owner did not answer")
	errTooLarge = errors.New("clipboard data exceeded limit")
)

// session is one X connection with an invisible requestor window.
// It is not safe for concurrent use.
type session struct {
	conn  *xgb.Conn
	win   xproto.Window
	atoms *atomCache

	// the clipboard owner changed while waiting for a conversion
	stale bool

	closeOnce sync.Once
}

func open() (*session, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("xgb connect: %w", err)
	}

	s := &session{conn: conn}
	if err := s.init(); err != nil {
		s.close()
		return nil, err
	}

	return s, nil
}

func (s *session) init() error {
	var err error
	if s.atoms, err = loadAtoms(s.conn); err != nil {
		return fmt.Errorf("load atoms: %w", err)
	}

	screen := xproto.Setup(s.conn).DefaultScreen(s.conn)
	if s.win, err = xproto.NewWindowId(s.conn); err != nil {
		return err
	}

	err = xproto.CreateWindowChecked(
		s.conn,
		screen.RootDepth,
		s.win,
		screen.Root,
		0,
		0,
		1,
		1,
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange},
	).Check()
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	return nil
}

// subscribe asks for an event on every clipboard owner change.
func (s *session) subscribe() error {
	if err := xfixes.Init(s.conn); err != nil {
		return fmt.Errorf("xfixes init: %w", err)
	}

	if _, err := xfixes.QueryVersion(s.conn, xFixesClientMajor, xFixesClientMinor).Reply(); err != nil {
		return fmt.Errorf("xfixes query version: %w", err)
	}

	mask := xfixes.SelectionEventMaskSetSelectionOwner |
		xfixes.SelectionEventMaskSelectionWindowDestroy |
		xfixes.SelectionEventMaskSelectionClientClose

	err := xfixes.SelectSelectionInputChecked(s.conn, s.win, s.atoms.Clipboard, uint32(mask)).Check()
	if err != nil {
		return fmt.Errorf("select selection input: %w", err)
	}

	return nil
}

func (s *session) close() {
	s.closeOnce.Do(s.conn.Close)
}

func (s *session) requestTargets() {
	xproto.ConvertSelection(s.conn, s.win, s.atoms.Clipboard, s.atoms.Targets, s.atoms.LocalProp, xproto.TimeCurrentTime)
}

// convert requests target from the clipboard owner and waits for the answer.
func (s *session) convert(target xproto.Atom) ([]byte, error) {
	xproto.ConvertSelection(s.conn, s.win, s.atoms.Clipboard, target, s.atoms.LocalProp, xproto.TimeCurrentTime)

	var notify xproto.SelectionNotifyEvent
	err := s.waitFor(func(ev xgb.Event) bool {
		e, ok := ev.(xproto.SelectionNotifyEvent)
		if ok && e.Target == target {
			notify = e
			return true
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	if notify.Property == xproto.AtomNone {
		return nil, errRefused
	}

	return s.readProperty(notify.Property)
}

// waitFor polls events until match accepts one or the timeout expires.
func (s *session) waitFor(match func(xgb.Event) bool) error {
	deadline := time.Now().Add(convertTimeout)

	for time.Now().Before(deadline) {
		ev, xerr := s.conn.PollForEvent()
		if xerr != nil {
			continue
		}
		if ev == nil {
			time.Sleep(pollInterval)
			continue
		}

		if e, ok := ev.(xfixes.SelectionNotifyEvent); ok && e.Selection == s.atoms.Clipboard {
			s.stale = true
			continue
		}

		if match(ev) {
			return nil
		}
	}

	return errTimeout
}

// readProperty returns the value the owner stored in prop and deletes it.
func (s *session) readProperty(prop xproto.Atom) ([]byte, error) {
	typ, data, err := s.fetch(prop)
	if err != nil {
		return nil, err
	}

	if typ == s.atoms.Incr {
		return s.readIncr(prop)
	}

	return data, nil
}

// fetch reads prop in maxPropSize pieces, then deletes it.
func (s *session) fetch(prop xproto.Atom) (xproto.Atom, []byte, error) {
	var typ xproto.Atom

	data, err := readChunks(func(offset uint32) ([]byte, uint32, error) {
		reply, err := xproto.GetProperty(s.conn, false, s.win, prop, xproto.GetPropertyTypeAny, offset, maxPropSize).Reply()
		if err != nil {
			return nil, 0, err
		}
		typ = reply.Type
		return reply.Value, reply.BytesAfter, nil
	})
	if err != nil {
		return 0, nil, err
	}

	xproto.DeleteProperty(s.conn, s.win, prop)
	return typ, data, nil
}

// readChunks calls get with an advancing offset, counted in 32-bit units,
// until nothing is left after the returned piece.
func readChunks(get func(offset uint32) (value []byte, after uint32, err error)) ([]byte, error) {
	var (
		buf    bytes.Buffer
		offset uint32
	)

	for {
		value, after, err := get(offset)
		if err != nil {
			return nil, err
		}

		if buf.Len()+len(value) > maxDataSize {
			return nil, errTooLarge
		}
		buf.Write(value)

		if after == 0 || len(value) == 0 {
			return buf.Bytes(), nil
		}
		offset += uint32(len(value) / 4)
	}
}

// readIncr collects an INCR transfer. Deleting each piece asks the owner for the next one.
func (s *session) readIncr(prop xproto.Atom) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(4096)

	for {
		var (
			chunk   []byte
			readErr error
		)

		err := s.waitFor(func(ev xgb.Event) bool {
			event, ok := ev.(xproto.PropertyNotifyEvent)
			if !ok || event.Window != s.win || event.Atom != prop || event.State != xproto.PropertyNewValue {
				return false
			}

			_, chunk, readErr = s.fetch(prop)
			return true
		})
		if err != nil {
			return nil, err
		}
		if readErr != nil {
			return nil, readErr
		}

		if len(chunk) == 0 {
			return buf.Bytes(), nil
		}

		if buf.Len()+len(chunk) > maxDataSize {
			return nil, errTooLarge
		}

		buf.Write(chunk)
	}
}
