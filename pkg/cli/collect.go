/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/census/pkg/census"
	"github.com/NVIDIA/census/pkg/export"
	"github.com/NVIDIA/census/pkg/hostlist"
	"github.com/NVIDIA/census/pkg/producer"
	"github.com/NVIDIA/census/pkg/record"
	"github.com/NVIDIA/census/pkg/serializer"
)

var (
	summaryFlag = &cli.StringFlag{
		Name:    "summary",
		Aliases: []string{"o"},
		Usage:   "Run summary output path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Run summary format, one of %v", serializer.SupportedFormats()),
		Value:   string(serializer.FormatYAML),
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "Path to kubeconfig for the cluster-node host fallback",
		Sources: cli.EnvVars("KUBECONFIG"),
	}
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Query hosts and export the normalized results",
		Description: `Query configuration facts from each host and export the combined
dataset.

Hosts come from repeated --host flags. When no host is given, the cluster
nodes visible through the kubeconfig are used instead, optionally filtered
with --node-selector.

The bundled fact producers read from the machine the process runs on:

  system      OS, kernel, CPU, and memory facts (one record per host)
  interfaces  network interfaces (one record each, address lists)
  systemd     systemd unit states (one record each, see --unit)

# Examples

Sequential collection with all exports:
  census collect --host node-a --host node-b --html --csv --list -O report

Eight-way parallel with a per-host timeout:
  census collect --host node-a --host node-b --concurrency 8 --timeout 15s --csv

Fall back to cluster nodes with a selector:
  census collect --node-selector nodeGroup=gpu --html`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "host",
				Aliases: []string{"H"},
				Usage:   "Host to query (can be repeated)",
				Sources: cli.EnvVars("CENSUS_HOSTS"),
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Usage:   "Maximum host queries in flight",
				Sources: cli.EnvVars("CENSUS_CONCURRENCY"),
				Value:   1,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-host query timeout",
				Value: 30 * time.Second,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Maximum host query launches per second (0 = unlimited)",
			},
			&cli.StringFlag{
				Name:  "facts",
				Usage: "Bundled fact producer: system, interfaces, or systemd",
				Value: "system",
			},
			&cli.StringSliceFlag{
				Name:  "unit",
				Usage: "Systemd unit to report (can be repeated; systemd facts only)",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "Export an HTML table document",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Export CSV of the raw records",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "Export a flat field/value listing (appended)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"O"},
				Usage:   "Output base name for exports",
				Value:   "census",
			},
			&cli.StringFlag{
				Name:  "default-kind",
				Usage: "Column kind for non-scalar first values",
				Value: record.KindString.String(),
			},
			&cli.BoolFlag{
				Name:  "union-schema",
				Usage: "Widen the table schema to all observed fields",
			},
			&cli.StringFlag{
				Name:  "node-selector",
				Usage: "Label selector for the cluster-node host fallback",
			},
			summaryFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown summary format: %q", outFormat)
			}

			p, err := producerForName(cmd.String("facts"), cmd.StringSlice("unit"))
			if err != nil {
				return err
			}

			defaultKind, ok := record.ParseKind(cmd.String("default-kind"))
			if !ok {
				return fmt.Errorf("unknown value kind: %q", cmd.String("default-kind"))
			}

			c := &census.Census{
				Options: census.Options{
					Hosts:         cmd.StringSlice("host"),
					Concurrency:   cmd.Int("concurrency"),
					Timeout:       cmd.Duration("timeout"),
					RatePerSecond: cmd.Float("rate"),
					DefaultKind:   defaultKind,
					UnionSchema:   cmd.Bool("union-schema"),
					Export: export.Options{
						HTML: cmd.Bool("html"),
						CSV:  cmd.Bool("csv"),
						List: cmd.Bool("list"),
						Base: cmd.String("output"),
					},
				},
				Producer: p,
				Lister: &hostlist.KubeNodes{
					Kubeconfig:    cmd.String("kubeconfig"),
					LabelSelector: cmd.String("node-selector"),
				},
				OnHostStart: func(host string) {
					slog.Info("querying host", "host", host)
				},
			}

			res, err := c.Run(ctx)
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("summary"))
			defer w.Close()
			if err := w.Serialize(ctx, res.Summarize()); err != nil {
				return fmt.Errorf("failed to write run summary: %w", err)
			}

			return res.ExportErr
		},
	}
}

func producerForName(facts string, units []string) (producer.Producer, error) {
	switch facts {
	case "system":
		return producer.System{}, nil
	case "interfaces":
		return producer.Interfaces{}, nil
	case "systemd":
		return &producer.Systemd{Units: units}, nil
	default:
		return nil, fmt.Errorf("unknown fact producer: %q", facts)
	}
}
