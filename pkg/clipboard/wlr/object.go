//go:build linux

package wlr

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/labi-le/clipmon/pkg/format"
	"github.com/labi-le/clipmon/pkg/mime"
)

const (
	receiveTimeout = time.Second
	maxDataSize    = 50 * 1024 * 1024
)

// offer is a selection offer. Data is transferred on demand from the goroutine owning the session.
type offer struct {
	s     *session
	src   *dataControlOffer
	mimes []string
}

func (o *offer) Offer(mimeType string) {
	o.mimes = append(o.mimes, mimeType)
}

func (o *offer) Present(f format.Format) bool {
	_, ok := mime.Pick(f, o.mimes)
	return ok
}

func (o *offer) Data(f format.Format) ([]byte, bool) {
	target, ok := mime.Pick(f, o.mimes)
	if !ok {
		return nil, false
	}

	data, err := o.receive(target)
	if err != nil {
		o.s.logger.Debug().Err(err).Str("mime", target).Msg("failed to receive offer")
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	if data, err = mime.Decode(target, data); err != nil {
		return nil, false
	}

	return data, true
}

// receive reads target through a pipe until the source closes it.
func (o *offer) receive(target string) ([]byte, error) {
	if o.s.selection != o {
		return nil, errNoSelected
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("pipe: %w", err)
	}
	defer r.Close()

	o.src.Receive(target, w)
	err = o.s.client.RoundTrip()
	// the source holds its own copy of the write end now
	_ = w.Close()
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	if err := r.SetReadDeadline(time.Now().Add(receiveTimeout)); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, maxDataSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDataSize {
		return nil, errTooLarge
	}

	return data, nil
}

// snapshot copies every present format, so the result outlives the session.
func (o *offer) snapshot() format.Snapshot {
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
