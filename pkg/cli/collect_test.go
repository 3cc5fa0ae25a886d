/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"testing"

	"github.com/NVIDIA/census/pkg/producer"
)

func TestProducerForName(t *testing.T) {
	tests := []struct {
		name    string
		facts   string
		wantErr bool
	}{
		{"system", "system", false},
		{"interfaces", "interfaces", false},
		{"systemd", "systemd", false},
		{"unknown", "sysctl", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := producerForName(tt.facts, nil)
			if tt.wantErr {
				if err == nil {
					t.Errorf("producerForName(%q) should fail", tt.facts)
				}
				return
			}
			if err != nil {
				t.Fatalf("producerForName(%q) failed: %v", tt.facts, err)
			}
			if p == nil {
				t.Errorf("producerForName(%q) returned nil producer", tt.facts)
			}
		})
	}
}

func TestProducerForNameSystemdUnits(t *testing.T) {
	p, err := producerForName("systemd", []string{"sshd.service"})
	if err != nil {
		t.Fatalf("producerForName failed: %v", err)
	}

	sd, ok := p.(*producer.Systemd)
	if !ok {
		t.Fatalf("producer type = %T", p)
	}
	if len(sd.Units) != 1 || sd.Units[0] != "sshd.service" {
		t.Errorf("Units = %v", sd.Units)
	}
}

func TestRootCommand(t *testing.T) {
	cmd := rootCmd()

	if cmd.Name != "census" {
		t.Errorf("command name = %q", cmd.Name)
	}

	found := false
	for _, sub := range cmd.Commands {
		if sub.Name == "collect" {
			found = true
		}
	}
	if !found {
		t.Error("root command is missing the collect subcommand")
	}
}

func TestCollectCommandFlagDefaults(t *testing.T) {
	cmd := collectCmd()

	want := map[string]bool{
		"host": true, "concurrency": true, "timeout": true, "rate": true,
		"facts": true, "unit": true, "html": true, "csv": true, "list": true,
		"output": true, "default-kind": true, "union-schema": true,
		"node-selector": true, "summary": true, "format": true, "kubeconfig": true,
	}
	for _, f := range cmd.Flags {
		delete(want, f.Names()[0])
	}
	for name := range want {
		t.Errorf("collect command is missing flag %q", name)
	}
}
