package cmd

import (
	"context"
	"fmt"

	"github.com/BerylCAtieno/network-navigator/internal/assistant"
	"github.com/BerylCAtieno/network-navigator/internal/message"
	"github.com/BerylCAtieno/network-navigator/internal/store"
	"github.com/spf13/cobra"
)

var (
	generateName       string
	generateRole       string
	generateCompany    string
	generateContext    string
	generateInfo       string
	generateTone       string
	generateLinkedIn   string
	generateVariations int
	generateSave       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write an outreach message",
	Long: `Write a short outreach message for a contact. The tone defaults to the one
saved in settings. With --save the first message is recorded on the matching
contact, which is created when it does not exist.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "Recipient name (required)")
	generateCmd.Flags().StringVarP(&generateRole, "role", "r", "", "Recipient job title")
	generateCmd.Flags().StringVarP(&generateCompany, "company", "c", "", "Recipient company")
	generateCmd.Flags().StringVar(&generateContext, "context", "", "Sentence describing how you found them")
	generateCmd.Flags().StringVar(&generateInfo, "info", "", "Something personal: a post, article or award")
	generateCmd.Flags().StringVarP(&generateTone, "tone", "t", "", "professional, friendly or casual")
	generateCmd.Flags().StringVar(&generateLinkedIn, "linkedin", "", "Profile URL stored with --save")
	generateCmd.Flags().IntVar(&generateVariations, "variations", 0, "Number of alternative messages to print (max 10)")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Record the message on the contact")
	_ = generateCmd.MarkFlagRequired("name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateVariations < 0 || generateVariations > 10 {
		return fmt.Errorf("--variations must be between 0 and 10")
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	settings, err := a.store.Settings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	tone := generateTone
	if tone == "" {
		tone = settings.MessageTone
	}

	req := message.Request{
		Name:         generateName,
		Role:         generateRole,
		Company:      generateCompany,
		Context:      generateContext,
		PersonalInfo: generateInfo,
		Tone:         message.Tone(tone),
	}

	composer, err := a.composer(cmd.Context())
	if err != nil {
		return err
	}
	timeout, err := a.cfg.Generator.TimeoutDuration()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var results []assistant.Result
	if generateVariations > 0 {
		results, err = composer.Variations(ctx, req, settings.AIModel, generateVariations)
	} else {
		var res assistant.Result
		res, err = composer.Compose(ctx, req, settings.AIModel)
		results = []assistant.Result{res}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		if len(results) > 1 {
			fmt.Fprintf(out, "--- Variation %d (%s, %d words) ---\n", i+1, res.Source, res.WordCount)
		}
		fmt.Fprintln(out, res.Message)
		if i < len(results)-1 {
			fmt.Fprintln(out)
		}
	}

	if !generateSave {
		return nil
	}

	contact, err := a.store.SaveGeneratedMessage(store.GeneratedMessage{
		Name:     generateName,
		Company:  generateCompany,
		Role:     generateRole,
		LinkedIn: generateLinkedIn,
		Message:  results[0].Message,
	})
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	fmt.Fprintf(out, "\nSaved to contact %s (%s)\n", contact.Name, contact.ID)
	return nil
}
