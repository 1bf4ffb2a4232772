package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/termbg/pkg/termbg"
)

func (a *app) newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color",
		Short: "Print the background color",
		Long: `Print the background color as an X11 rgb: value followed by its hex form.
Falls back to COLORFGBG when the terminal does not answer.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			c, err := a.prober().Color(a.cfg.Timeout)
			if err != nil {
				a.probeFailed(err)
				return nil
			}
			fmt.Fprintf(a.stdout, "%s %s\n", c, c.Hex())
			return nil
		},
	}
}

func (a *app) newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Print dark or light",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			c, err := a.prober().Color(a.cfg.Timeout)
			if err != nil {
				a.probeFailed(err)
				return nil
			}
			fmt.Fprintln(a.stdout, termbg.Classify(c))
			return nil
		},
	}
}

func (a *app) newLatencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latency",
		Short: "Print the round-trip time of a device status query",
		Long: `Print the time between sending a device status report request and
receiving its reply. Emacs and the Windows console report 0s.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			d, err := a.prober().Latency(a.cfg.LatencyTimeout)
			if err != nil {
				a.probeFailed(err)
				return nil
			}
			fmt.Fprintln(a.stdout, d)
			return nil
		},
	}
}

func (a *app) newFamilyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "family",
		Short: "Print the detected terminal family",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			fmt.Fprintln(a.stdout, a.prober().Family())
			return nil
		},
	}
}
