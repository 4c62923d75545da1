// Package scripted provides a transport backed by in-process fake devices that
// answer commands from a fixture script.
package scripted

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/remedy/internal/adapters/transport"
	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
)

var errUnreachable = errors.New("device unreachable")

type Transport struct {
	script Script
	opts   transport.Options

	mu      sync.Mutex
	devices []*Device
}

var _ ports.Transport = (*Transport)(nil)

func New(script Script, opts transport.Options) *Transport {
	return &Transport{script: script, opts: opts}
}

func (t *Transport) Open(ctx context.Context, target domain.Target) (ports.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.script.unreachable(target.Device) {
		return nil, &domain.ConnectionError{Device: target.Device, Err: errUnreachable}
	}

	device := newDevice(target.Device, t.script)
	go device.serve()

	t.mu.Lock()
	t.devices = append(t.devices, device)
	t.mu.Unlock()

	stream := transport.Stream{Reader: device.outR, Writer: device.inW, Closer: device}
	session, err := transport.Open(ctx, target.Device, stream, t.opts)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Devices returns every device opened so far, in open order.
func (t *Transport) Devices() []*Device {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]*Device(nil), t.devices...)
}
