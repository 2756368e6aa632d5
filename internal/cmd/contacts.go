package cmd

import (
	"fmt"
	"time"

	"github.com/BerylCAtieno/network-navigator/internal/api"
	"github.com/BerylCAtieno/network-navigator/internal/models"
	"github.com/BerylCAtieno/network-navigator/internal/store"
	"github.com/spf13/cobra"
)

var (
	listTag    string
	listWarmth string
	listJSON   bool

	addName      string
	addCompany   string
	addRole      string
	addLinkedIn  string
	addHowWeMet  string
	addInterests string
	addNotes     string
	addTags      string
	addWarmth    string
)

var contactsCmd = &cobra.Command{
	Use:     "contacts",
	Aliases: []string{"contact"},
	Short:   "Manage the contact book",
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts, optionally filtered by tag or warmth",
	Args:  cobra.NoArgs,
	RunE:  runContactsList,
}

var contactsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contact",
	Args:  cobra.NoArgs,
	RunE:  runContactsAdd,
}

var contactsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact and its interactions",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactsDelete,
}

func init() {
	rootCmd.AddCommand(contactsCmd)
	contactsCmd.AddCommand(contactsListCmd, contactsAddCmd, contactsDeleteCmd)

	contactsListCmd.Flags().StringVar(&listTag, "tag", "", "Only contacts carrying this tag")
	contactsListCmd.Flags().StringVar(&listWarmth, "warmth", "", "Only contacts at this warmth: cold, warm or hot")
	contactsListCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of cards")

	contactsAddCmd.Flags().StringVarP(&addName, "name", "n", "", "Full name (required)")
	contactsAddCmd.Flags().StringVarP(&addCompany, "company", "c", "", "Company")
	contactsAddCmd.Flags().StringVarP(&addRole, "role", "r", "", "Job title")
	contactsAddCmd.Flags().StringVar(&addLinkedIn, "linkedin", "", "LinkedIn profile URL")
	contactsAddCmd.Flags().StringVar(&addHowWeMet, "met", "", "How you met")
	contactsAddCmd.Flags().StringVar(&addInterests, "interests", "", "Their interests")
	contactsAddCmd.Flags().StringVar(&addNotes, "notes", "", "Free-form notes")
	contactsAddCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags")
	contactsAddCmd.Flags().StringVar(&addWarmth, "warmth", string(models.WarmthCold), "cold, warm or hot")
	_ = contactsAddCmd.MarkFlagRequired("name")
}

func runContactsList(cmd *cobra.Command, args []string) error {
	warmth := models.WarmthLevel(listWarmth)
	if warmth != "" && !warmth.IsValid() {
		return fmt.Errorf("unknown warmth level %q", listWarmth)
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	contacts := a.store.List(store.Filter{Tag: listTag, Warmth: warmth})
	if listJSON {
		return writeJSON(cmd.OutOrStdout(), contacts)
	}
	fmt.Fprint(cmd.OutOrStdout(), api.FormatContacts(contacts, time.Now()))
	return nil
}

func runContactsAdd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	contact, err := a.store.Create(store.ContactInput{
		Name:        addName,
		Company:     addCompany,
		Role:        addRole,
		LinkedIn:    addLinkedIn,
		HowWeMet:    addHowWeMet,
		Interests:   addInterests,
		Notes:       addNotes,
		Tags:        store.ParseTags(addTags),
		WarmthLevel: models.WarmthLevel(addWarmth),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", contact.Name, contact.ID)
	return nil
}

func runContactsDelete(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
