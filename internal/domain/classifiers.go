package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	ResetCountThreshold = 10
	RxPowerFloorDBm     = -7.00
)

var (
	interfaceResetsPattern = regexp.MustCompile(`^\s*(\d+) interface resets`)
	rxPowerPattern         = regexp.MustCompile(`(?i)power\s+(-?\d+(?:\.\d+)?)\s*dbm`)
	rxPowerTokenPattern    = regexp.MustCompile(`(?i)power\s+(\S+)\s*dbm`)
)

// ModuleStatus returns the Status column of the first row of the module
// table in "show module" output.
func ModuleStatus(lines []string) (string, error) {
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "Mod" || !strings.EqualFold(fields[len(fields)-1], "Status") {
			continue
		}

		for _, row := range lines[i+1:] {
			row = strings.TrimSpace(row)
			if row == "" || strings.HasPrefix(row, "---") {
				continue
			}

			columns := strings.Fields(row)
			if len(columns) < 2 {
				return "", &ParseError{Field: "module status", Reason: "module row has no status column"}
			}

			return columns[len(columns)-1], nil
		}

		return "", &ParseError{Field: "module status", Reason: "module table has no rows"}
	}

	return "", &ParseError{Field: "module status", Reason: "module table header not found"}
}

func ModuleUptime(lines []string) (string, error) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if value, ok := strings.CutPrefix(trimmed, "Up Time:"); ok {
			value = strings.TrimSpace(value)
			if value == "" {
				break
			}
			return value, nil
		}
	}

	return "", &ParseError{Field: "module uptime", Reason: `"Up Time:" line not found`}
}

// InterfaceResetCounts returns every "<N> interface resets" value in order.
func InterfaceResetCounts(lines []string) []int {
	var counts []int
	for _, line := range lines {
		match := interfaceResetsPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if match == nil {
			continue
		}

		count, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		counts = append(counts, count)
	}

	return counts
}

// InterfaceResetCount returns the first reset count, or 0 when the output
// carries no reset counter.
func InterfaceResetCount(lines []string) int {
	counts := InterfaceResetCounts(lines)
	if len(counts) == 0 {
		return 0
	}

	return counts[0]
}

func RxPowerDBm(text string) (float64, error) {
	match := rxPowerPattern.FindStringSubmatch(text)
	if match == nil {
		if token := rxPowerTokenPattern.FindStringSubmatch(text); token != nil {
			return 0, &ParseError{Field: "rx power", Reason: "non-numeric value " + strconv.Quote(token[1])}
		}
		return 0, &ParseError{Field: "rx power", Reason: "no power reading in output"}
	}

	power, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, &ParseError{Field: "rx power", Reason: err.Error()}
	}

	return power, nil
}

func ResetsEscalate(count int) bool {
	return count > ResetCountThreshold
}

func RxPowerFaulty(dbm float64) bool {
	return dbm < RxPowerFloorDBm
}
