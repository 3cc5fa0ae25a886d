package producer

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/net"

	"github.com/NVIDIA/census/pkg/record"
)

// Interfaces produces one record per network interface of the local
// machine: name, MTU, hardware address, up/down flag, and the list of
// assigned addresses.
type Interfaces struct{}

// Produce implements Producer.
func (Interfaces) Produce(ctx context.Context, target string) ([]*record.Record, error) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	records := make([]*record.Record, 0, len(ifaces))
	for _, it := range ifaces {
		addrs := make([]string, 0, len(it.Addrs))
		for _, a := range it.Addrs {
			addrs = append(addrs, a.Addr)
		}

		r := record.New().
			SetString("Name", it.Name).
			SetInt("MTU", int64(it.MTU)).
			SetString("HardwareAddr", it.HardwareAddr).
			SetBool("Up", hasFlag(it.Flags, "up")).
			SetStrings("Addresses", addrs...)

		records = append(records, r)
	}

	return records, nil
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}
