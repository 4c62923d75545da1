package scripted

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

const invalidCommand = "                 ^\n% Invalid command at '^' marker."

// Device is an in-process fake device speaking over pipes: it echoes each
// command line, prints the matching fixture output and then its prompt.
type Device struct {
	name   string
	prompt string
	script Script

	inR  *io.PipeReader
	inW  *io.PipeWriter
	outR *io.PipeReader
	outW *io.PipeWriter

	mu       sync.Mutex
	commands []string
	closes   int

	closeOnce sync.Once
	done      chan struct{}
}

func newDevice(name string, script Script) *Device {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	return &Device{
		name:   name,
		prompt: name + "# ",
		script: script,
		inR:    inR,
		inW:    inW,
		outR:   outR,
		outW:   outW,
		done:   make(chan struct{}),
	}
}

func (d *Device) Name() string {
	return d.name
}

// Commands returns the command lines the device has received, in order.
func (d *Device) Commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.commands...)
}

// Closes reports how many times the device connection was closed.
func (d *Device) Closes() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.closes
}

func (d *Device) Close() error {
	d.mu.Lock()
	d.closes++
	d.mu.Unlock()

	d.closeOnce.Do(func() {
		_ = d.inR.Close()
		_ = d.inW.Close()
		_ = d.outR.Close()
		_ = d.outW.Close()
	})
	<-d.done

	return nil
}

func (d *Device) serve() {
	defer close(d.done)

	if !d.write(d.script.Banner + d.prompt) {
		return
	}

	scanner := bufio.NewScanner(d.inR)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())

		d.mu.Lock()
		d.commands = append(d.commands, command)
		d.mu.Unlock()

		if command == "" {
			if !d.write("\r\n" + d.prompt) {
				return
			}
			continue
		}

		output := invalidCommand
		if fixture, ok := d.script.lookup(d.name, command); ok {
			if fixture.Hang {
				continue
			}
			output = fixture.Output
		}

		if !d.write(command + "\r\n" + crlf(output) + "\r\n" + d.prompt) {
			return
		}
	}
}

func (d *Device) write(text string) bool {
	_, err := io.WriteString(d.outW, text)
	return err == nil
}

func crlf(text string) string {
	text = strings.TrimRight(text, "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "\r\n")
}
