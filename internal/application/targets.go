package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
)

// DeviceProfile is the configured way to reach a device. Empty fields fall
// back to the resolver defaults.
type DeviceProfile struct {
	Address     string
	Username    string
	PasswordRef string
}

type TargetResolver interface {
	Resolve(ctx context.Context, device string) (domain.Target, error)
}

// ProfileResolver builds targets from device profiles, reading passwords
// from a credential source. Device names match case-insensitively.
type ProfileResolver struct {
	defaults DeviceProfile
	devices  map[string]DeviceProfile
	creds    ports.CredentialSource
}

func NewProfileResolver(defaults DeviceProfile, devices map[string]DeviceProfile, creds ports.CredentialSource) *ProfileResolver {
	copied := make(map[string]DeviceProfile, len(devices))
	for name, profile := range devices {
		copied[strings.ToLower(name)] = profile
	}

	return &ProfileResolver{defaults: defaults, devices: copied, creds: creds}
}

func (r *ProfileResolver) Resolve(ctx context.Context, device string) (domain.Target, error) {
	profile := r.devices[strings.ToLower(device)]

	target := domain.Target{
		Device:   device,
		Address:  firstNonEmpty(profile.Address, device),
		Username: firstNonEmpty(profile.Username, r.defaults.Username),
	}

	ref := firstNonEmpty(profile.PasswordRef, r.defaults.PasswordRef)
	if ref == "" || r.creds == nil {
		return target, nil
	}

	password, err := r.creds.Lookup(ctx, expandRef(ref, device))
	if err != nil {
		return domain.Target{}, fmt.Errorf("lookup password for %s: %w", device, err)
	}
	target.Password = password

	return target, nil
}

// expandRef substitutes {device} so one default reference can serve every
// device.
func expandRef(ref, device string) string {
	return strings.ReplaceAll(ref, "{device}", device)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}
