package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariebrainware/clinique/config"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "clinique",
		Short:        "Clinic appointments, billing, patient records, doctors directory and authentication.",
		SilenceUsage: true,
	}
	for _, service := range []string{config.ServiceAuth, config.ServiceDoctors, config.ServicePatients, config.ServiceRDV} {
		root.AddCommand(newServeCommand(service))
	}
	root.AddCommand(newSeedCommand(), newGeoIPCommand())
	return root
}
