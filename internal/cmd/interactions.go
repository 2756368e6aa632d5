package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	interactionType  string
	interactionNotes string
)

var interactionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "Record interactions with contacts",
}

var interactionsAddCmd = &cobra.Command{
	Use:   "add <contact-id>",
	Short: "Log an interaction and mark the contact as contacted now",
	Args:  cobra.ExactArgs(1),
	RunE:  runInteractionsAdd,
}

func init() {
	rootCmd.AddCommand(interactionsCmd)
	interactionsCmd.AddCommand(interactionsAddCmd)

	interactionsAddCmd.Flags().StringVar(&interactionType, "type", "message", "Kind of interaction: email, call, meeting, linkedin, message")
	interactionsAddCmd.Flags().StringVar(&interactionNotes, "notes", "", "What happened")
}

func runInteractionsAdd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	interaction, err := a.store.AddInteraction(args[0], interactionType, interactionNotes)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged %s interaction %s\n", interaction.Type, interaction.ID)
	return nil
}
