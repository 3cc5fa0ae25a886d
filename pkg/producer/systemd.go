package producer

import (
	"context"
	"fmt"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/NVIDIA/census/pkg/record"
)

// Systemd produces one record per systemd unit on the local machine.
// When Units is empty all loaded units are reported.
type Systemd struct {
	Units []string
}

// Produce implements Producer.
func (p *Systemd) Produce(ctx context.Context, target string) ([]*record.Record, error) {
	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	var units []dbus.UnitStatus
	if len(p.Units) > 0 {
		units, err = conn.ListUnitsByNamesContext(ctx, p.Units)
	} else {
		units, err = conn.ListUnitsContext(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	records := make([]*record.Record, 0, len(units))
	for _, u := range units {
		r := record.New().
			SetString("Unit", u.Name).
			SetString("Description", u.Description).
			SetString("LoadState", u.LoadState).
			SetString("ActiveState", u.ActiveState).
			SetString("SubState", u.SubState)
		records = append(records, r)
	}

	return records, nil
}
