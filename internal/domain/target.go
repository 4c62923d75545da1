package domain

import "fmt"

// Target is the endpoint and credentials a session is opened against.
type Target struct {
	Device   string
	Address  string
	Username string
	Password string
}

func (t Target) String() string {
	if t.Address == "" || t.Address == t.Device {
		return t.Device
	}

	return fmt.Sprintf("%s (%s)", t.Device, t.Address)
}
