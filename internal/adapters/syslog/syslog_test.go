package syslog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/remedy/internal/domain"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `2015 Apr  2 14:25:06 switch1 %ETHPORT-5-IF_DOWN_INTERFACE_REMOVED: Interface Ethernet5/1 is down (Interface removed)
2015 Apr  2 14:25:07 switch1 %ETHPORT-5-IF_DOWN_LINK_FAILURE: Interface Ethernet1/4 is down (Link failure)
this line is not a syslog event
2015 Apr  2 14:25:09 switch2 %SYSMGR-2-SERVICE_CRASHED: Service "bgp" (PID 4242) hasn't caught signal 6
`

func TestParseExtractsFields(t *testing.T) {
	record, ok := Parse("2015 Apr  2 14:25:06 switch1 %ETHPORT-5-IF_DOWN_INTERFACE_REMOVED: Interface Ethernet5/1 is down (Interface removed)\r\n")
	require.True(t, ok)

	assert.Equal(t, Record{
		Datestamp:    "2015 Apr  2",
		Time:         "14:25:06",
		Device:       "switch1",
		ErrorCode:    "ETHPORT-5-IF_DOWN_INTERFACE_REMOVED",
		ErrorMessage: "Interface Ethernet5/1 is down (Interface removed)",
	}, record)
	assert.Equal(t, domain.IdentityKey{
		Timestamp:    "2015 Apr 2 14:25:06",
		Device:       "switch1",
		ErrorCode:    "ETHPORT-5-IF_DOWN_INTERFACE_REMOVED",
		ErrorMessage: "Interface Ethernet5/1 is down (Interface removed)",
	}, record.Key())
}

func TestParseRejectsOtherLines(t *testing.T) {
	for _, line := range []string{
		"",
		"this line is not a syslog event",
		"2015 Apr  2 14:25:06 switch1 ETHPORT-5-IF_DOWN_LINK_FAILURE: missing percent",
		"Apr  2 14:25:06 switch1 %ETHPORT-5-IF_DOWN_LINK_FAILURE: missing year",
	} {
		_, ok := Parse(line)
		assert.False(t, ok, line)
	}
}

func TestParserImplementsLineParser(t *testing.T) {
	key, ok := Parser{}.Parse("2015 Apr 2 14:25:07 switch1 %ETHPORT-5-IF_DOWN_LINK_FAILURE: Interface Ethernet1/4 is down (Link failure)")
	require.True(t, ok)
	assert.Equal(t, "switch1", key.Device)
	assert.Equal(t, "2015 Apr 2 14:25:07", key.Timestamp)

	_, ok = Parser{}.Parse("garbage")
	assert.False(t, ok)
}

func TestReadFilePlainGzipAndZstd(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "syslog.txt")
	require.NoError(t, os.WriteFile(plain, []byte(sampleLog), 0o600))

	var gz bytes.Buffer
	gzw := gzip.NewWriter(&gz)
	_, err := gzw.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, gzw.Close())
	gzPath := filepath.Join(dir, "syslog.1.gz")
	require.NoError(t, os.WriteFile(gzPath, gz.Bytes(), 0o600))

	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zstPath := filepath.Join(dir, "syslog.2")
	require.NoError(t, os.WriteFile(zstPath, encoder.EncodeAll([]byte(sampleLog), nil), 0o600))
	require.NoError(t, encoder.Close())

	for _, path := range []string{plain, gzPath, zstPath} {
		lines, err := ReadFile(path)
		require.NoError(t, err, path)
		require.Len(t, lines, 4, path)
		assert.Equal(t, "this line is not a syslog event", lines[2], path)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.log"))
	assert.ErrorContains(t, err, "open log file")
}

func TestReadLinesShortInput(t *testing.T) {
	lines, err := ReadLines(bytes.NewReader([]byte("ab")))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, lines)
}

func TestFollowerEmitsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syslog.txt")
	require.NoError(t, os.WriteFile(path, []byte("old line\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines, err := NewFollower(path, nil).Follow(ctx, false)
	require.NoError(t, err)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = file.WriteString("first new\r\nsecond ")
	require.NoError(t, err)
	_, err = file.WriteString("half\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	assert.Equal(t, "first new", receive(t, lines))
	assert.Equal(t, "second half", receive(t, lines))

	cancel()
	for range lines {
	}
}

func TestFollowerFromStartAndLateCreation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "syslog.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines, err := NewFollower(path, nil).Follow(ctx, true)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("created later\n"), 0o600))
	assert.Equal(t, "created later", receive(t, lines))

	cancel()
	for range lines {
	}
}

func receive(t *testing.T, lines <-chan string) string {
	t.Helper()

	select {
	case line, ok := <-lines:
		require.True(t, ok, "follower stopped early")
		return line
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for followed line")
		return ""
	}
}
