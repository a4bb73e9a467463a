package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/labi-le/clipmon/pkg/format"
	"github.com/labi-le/clipmon/pkg/mime"
)

const selectionProperty = "CLIPMON_SELECTION"

type atomCache struct {
	Clipboard xproto.Atom
	Targets   xproto.Atom
	Incr      xproto.Atom
	LocalProp xproto.Atom

	// targets per format, most preferred first
	formats map[format.Format][]xproto.Atom
	names   map[xproto.Atom]string
}

func loadAtoms(c *xgb.Conn) (*atomCache, error) {
	names := append([]string{"CLIPBOARD", "TARGETS", "INCR", selectionProperty}, mime.Names()...)

	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(c, false, uint16(len(name)), name)
	}

	byName := make(map[string]xproto.Atom, len(names))
	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return nil, err
		}
		byName[names[i]] = reply.Atom
	}

	cache := &atomCache{
		Clipboard: byName["CLIPBOARD"],
		Targets:   byName["TARGETS"],
		Incr:      byName["INCR"],
		LocalProp: byName[selectionProperty],
		formats:   make(map[format.Format][]xproto.Atom),
		names:     make(map[xproto.Atom]string, len(byName)),
	}

	for name, atom := range byName {
		cache.names[atom] = name
	}
	for _, f := range format.All() {
		for _, name := range mime.Targets(f) {
			cache.formats[f] = append(cache.formats[f], byName[name])
		}
	}

	return cache, nil
}

// decodeAtoms reads a TARGETS property value.
func decodeAtoms(data []byte) map[xproto.Atom]struct{} {
	res := make(map[xproto.Atom]struct{}, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		res[xproto.Atom(xgb.Get32(data[i:]))] = struct{}{}
	}
	return res
}
