// Package syslog extracts device events from syslog text.
package syslog

import (
	"regexp"
	"strings"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
)

// 2015 Apr  2 14:25:06 switch1 %ETHPORT-5-IF_DOWN_LINK_FAILURE: Interface Ethernet1/4 is down (Link failure)
var linePattern = regexp.MustCompile(`^(\d+\s+\w+\s+\d+)\s+(\d+:\d+:\d+)\s+(\S+)\s+%(\S+):\s+(.*)`)

type Record struct {
	Datestamp    string
	Time         string
	Device       string
	ErrorCode    string
	ErrorMessage string
}

func (r Record) Key() domain.IdentityKey {
	return domain.IdentityKey{
		Timestamp:    domain.JoinTimestamp(r.Datestamp, r.Time),
		Device:       r.Device,
		ErrorCode:    r.ErrorCode,
		ErrorMessage: r.ErrorMessage,
	}
}

func Parse(line string) (Record, bool) {
	match := linePattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if match == nil {
		return Record{}, false
	}

	return Record{
		Datestamp:    match[1],
		Time:         match[2],
		Device:       match[3],
		ErrorCode:    match[4],
		ErrorMessage: strings.TrimRight(match[5], " \t"),
	}, true
}

type Parser struct{}

var _ ports.LineParser = Parser{}

func (Parser) Parse(line string) (domain.IdentityKey, bool) {
	record, ok := Parse(line)
	if !ok {
		return domain.IdentityKey{}, false
	}

	return record.Key(), true
}
