package x11

import (
	"github.com/jezek/xgb/xproto"
	"github.com/labi-le/clipmon/pkg/format"
	"github.com/labi-le/clipmon/pkg/mime"
)

// object converts targets on demand. It must be used from the goroutine owning the session.
type object struct {
	s       *session
	targets map[xproto.Atom]struct{}
}

func (o *object) target(f format.Format) (xproto.Atom, bool) {
	for _, atom := range o.s.atoms.formats[f] {
		if _, ok := o.targets[atom]; ok {
			return atom, true
		}
	}
	return 0, false
}

func (o *object) Present(f format.Format) bool {
	_, ok := o.target(f)
	return ok
}

func (o *object) Data(f format.Format) ([]byte, bool) {
	atom, ok := o.target(f)
	if !ok {
		return nil, false
	}

	data, err := o.s.convert(atom)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	if data, err = mime.Decode(o.s.atoms.names[atom], data); err != nil {
		return nil, false
	}

	return data, true
}

// snapshot copies every present format, so the result outlives the session.
func (o *object) snapshot() format.Snapshot {
	snap := format.Snapshot{}
	for _, f := range format.All() {
		if !o.Present(f) {
			continue
		}

		data, _ := o.Data(f)
		snap[f] = data
	}

	return snap
}
