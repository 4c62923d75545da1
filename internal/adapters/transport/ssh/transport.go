// Package ssh opens device sessions as interactive shells over SSH.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/bnema/remedy/internal/adapters/transport"
	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const (
	DefaultPort        = 22
	DefaultDialTimeout = 10 * time.Second

	terminalType   = "vt100"
	terminalWidth  = 511
	terminalHeight = 0
)

type Config struct {
	Port           int
	DialTimeout    time.Duration
	KnownHostsFile string
}

type Transport struct {
	cfg      Config
	opts     transport.Options
	hostKeys gossh.HostKeyCallback
}

var _ ports.Transport = (*Transport)(nil)

// New builds an SSH transport. Without a known_hosts file host keys are not
// verified, matching how lab network gear is usually reached.
func New(cfg Config, opts transport.Options) (*Transport, error) {
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	hostKeys := gossh.InsecureIgnoreHostKey()
	if cfg.KnownHostsFile != "" {
		callback, err := knownhosts.New(cfg.KnownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("load known hosts: %w", err)
		}
		hostKeys = callback
	}

	return &Transport{cfg: cfg, opts: opts, hostKeys: hostKeys}, nil
}

func (t *Transport) Open(ctx context.Context, target domain.Target) (ports.Session, error) {
	addr := t.address(target)
	t.opts.Logger.Debug("dialing device", zap.String("device", target.Device), zap.String("address", addr))

	client, err := t.dial(ctx, addr, target)
	if err != nil {
		return nil, &domain.ConnectionError{Device: target.Device, Err: err}
	}

	stream, err := openShell(client)
	if err != nil {
		_ = client.Close()
		return nil, &domain.ConnectionError{Device: target.Device, Err: err}
	}

	session, err := transport.Open(ctx, target.Device, stream, t.opts)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (t *Transport) address(target domain.Target) string {
	host := target.Address
	if host == "" {
		host = target.Device
	}
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}

	return net.JoinHostPort(host, strconv.Itoa(t.cfg.Port))
}

func (t *Transport) dial(ctx context.Context, addr string, target domain.Target) (*gossh.Client, error) {
	config := &gossh.ClientConfig{
		User: target.Username,
		Auth: []gossh.AuthMethod{
			gossh.Password(target.Password),
			gossh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = target.Password
				}
				return answers, nil
			}),
		},
		HostKeyCallback: t.hostKeys,
		Timeout:         t.cfg.DialTimeout,
	}

	dialer := net.Dialer{Timeout: t.cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	clientConn, chans, reqs, err := gossh.NewClientConn(conn, addr, config)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Time{})

	return gossh.NewClient(clientConn, chans, reqs), nil
}

func openShell(client *gossh.Client) (transport.Stream, error) {
	session, err := client.NewSession()
	if err != nil {
		return transport.Stream{}, fmt.Errorf("open ssh session: %w", err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		_ = session.Close()
		return transport.Stream{}, fmt.Errorf("attach stdin: %w", err)
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		_ = session.Close()
		return transport.Stream{}, fmt.Errorf("attach stdout: %w", err)
	}

	modes := gossh.TerminalModes{
		gossh.ECHO:          1,
		gossh.TTY_OP_ISPEED: 14400,
		gossh.TTY_OP_OSPEED: 14400,
	}
	if err := session.RequestPty(terminalType, terminalHeight, terminalWidth, modes); err != nil {
		_ = session.Close()
		return transport.Stream{}, fmt.Errorf("request pty: %w", err)
	}
	if err := session.Shell(); err != nil {
		_ = session.Close()
		return transport.Stream{}, fmt.Errorf("start shell: %w", err)
	}

	return transport.Stream{
		Reader: stdout,
		Writer: stdin,
		Closer: shellCloser{session: session, client: client},
	}, nil
}

type shellCloser struct {
	session *gossh.Session
	client  *gossh.Client
}

func (c shellCloser) Close() error {
	sessionErr := c.session.Close()
	if errors.Is(sessionErr, io.EOF) {
		sessionErr = nil
	}

	return errors.Join(sessionErr, c.client.Close())
}
