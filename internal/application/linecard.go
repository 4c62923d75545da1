package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/remedy/internal/domain"
)

// LinecardRoutine checks the module that owns an interface reported as
// removed.
type LinecardRoutine struct{}

func (LinecardRoutine) Name() string {
	return "linecard"
}

// Subject returns the module number: the slot half of the first
// "<module>/<port>" reference in the message.
func (LinecardRoutine) Subject(errorMessage string) (string, error) {
	match := interfacePattern.FindStringSubmatch(errorMessage)
	if match == nil {
		return "", &domain.ExtractionMiss{What: "module number", Input: errorMessage}
	}

	return match[1], nil
}

func (LinecardRoutine) Diagnose(ctx context.Context, q Querier, device, module string) (Finding, error) {
	lines, err := q.Query(ctx, showModuleCommand(module))
	if err != nil {
		return Finding{}, err
	}

	status, err := domain.ModuleStatus(lines)
	if err != nil {
		return Finding{}, err
	}

	if !strings.Contains(strings.ToLower(status), "ok") {
		return Finding{
			Classification: domain.ClassificationFaulty,
			Diagnosis:      fmt.Sprintf("[%s] module %s may be faulty: status %q", device, module, status),
		}, nil
	}

	lines, err = q.Query(ctx, showModuleUptimeCommand(module))
	if err != nil {
		return Finding{}, err
	}

	uptime, err := domain.ModuleUptime(lines)
	if err != nil {
		return Finding{}, err
	}

	return Finding{
		Classification: domain.ClassificationSuspect,
		Diagnosis:      fmt.Sprintf("[%s] module %s is suspect but appears fine: up %s", device, module, uptime),
	}, nil
}

func showModuleCommand(module string) string {
	return "show module " + module
}

func showModuleUptimeCommand(module string) string {
	return fmt.Sprintf(`show module uptime | egrep -A 3 "Module %s"`, module)
}
