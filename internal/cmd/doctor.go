package cmd

import (
	"fmt"

	"github.com/BerylCAtieno/network-navigator/internal/api"
	"github.com/spf13/cobra"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that messages can be generated and the store is readable",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Print the diagnostics as JSON")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	composer, err := a.composer(cmd.Context())
	if err != nil {
		return err
	}
	d := api.NewHandler(api.HandlerConfig{Composer: composer, Store: a.store, Logger: a.logger}).Diagnose()

	out := cmd.OutOrStdout()
	if doctorJSON {
		if err := writeJSON(out, d); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Status:           %s\n", d.Status)
		fmt.Fprintf(out, "Generator ready:  %t\n", d.GeneratorReady)
		fmt.Fprintf(out, "Tones:            %v\n", d.Tones)
		fmt.Fprintf(out, "AI model:         %s\n", d.AIModel)
		fmt.Fprintf(out, "Gemini available: %t\n", d.GeminiAvailable)
		fmt.Fprintf(out, "Store:            %s (%d contacts)\n", d.StorePath, d.Contacts)
		for _, hint := range d.Hints {
			fmt.Fprintf(out, "hint: %s\n", hint)
		}
	}

	if d.Status != "ok" {
		return fmt.Errorf("diagnostics reported %s", d.Status)
	}
	return nil
}
