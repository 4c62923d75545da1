package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/remedy/internal/domain"
)

// LinkRoutine checks receive light on an interface that keeps resetting.
type LinkRoutine struct{}

func (LinkRoutine) Name() string {
	return "link"
}

func (LinkRoutine) Subject(errorMessage string) (string, error) {
	match := interfacePattern.FindString(errorMessage)
	if match == "" {
		return "", &domain.ExtractionMiss{What: "interface", Input: errorMessage}
	}

	return match, nil
}

func (LinkRoutine) Diagnose(ctx context.Context, q Querier, device, iface string) (Finding, error) {
	lines, err := q.Query(ctx, showInterfaceCommand(iface))
	if err != nil {
		return Finding{}, err
	}

	var checked []string
	for _, resets := range domain.InterfaceResetCounts(lines) {
		if !domain.ResetsEscalate(resets) {
			continue
		}

		rxLines, err := q.Query(ctx, showTransceiverRxCommand(iface))
		if err != nil {
			return Finding{}, err
		}

		power, err := domain.RxPowerDBm(strings.Join(rxLines, "\n"))
		if err != nil {
			return Finding{}, err
		}

		if domain.RxPowerFaulty(power) {
			return Finding{
				Classification: domain.ClassificationFaulty,
				Diagnosis: fmt.Sprintf(
					"[%s] interface %s reset %d times and Rx power is too low [%.2f dBm]: drain the link, then clean or replace the fiber and patch-panel ports",
					device, iface, resets, power,
				),
			}, nil
		}
		checked = append(checked, fmt.Sprintf("%d resets at %.2f dBm", resets, power))
	}

	if len(checked) == 0 {
		return Finding{
			Classification: domain.ClassificationHealthy,
			Diagnosis:      fmt.Sprintf("[%s] interface %s reset count within threshold", device, iface),
		}, nil
	}

	return Finding{
		Classification: domain.ClassificationHealthy,
		Diagnosis:      fmt.Sprintf("[%s] interface %s light levels normal (%s)", device, iface, strings.Join(checked, ", ")),
	}, nil
}

func showInterfaceCommand(iface string) string {
	return "show interface eth " + iface
}

func showTransceiverRxCommand(iface string) string {
	return fmt.Sprintf(`show interface eth %s transceiver details | egrep "(Rx|rx)"`, iface)
}
