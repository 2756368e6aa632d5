package cmd

import (
	"fmt"
	"os"

	"github.com/BerylCAtieno/network-navigator/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	clearYes     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every contact to a JSON backup",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace every contact with those in a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every contact",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd, clearCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "File to write (default stdout)")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deleting all contacts")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	backup := a.store.Export()
	if exportOutput == "" || exportOutput == "-" {
		return writeJSON(cmd.OutOrStdout(), backup)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutput, err)
	}
	if err := writeJSON(f, backup); err != nil {
		f.Close()
		return fmt.Errorf("failed to write backup: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contacts to %s\n", len(backup.Contacts), exportOutput)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	backup, err := store.DecodeBackup(data)
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.store.Import(backup)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d contacts\n", n)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	n := a.store.Count()
	if !clearYes {
		return fmt.Errorf("refusing to delete %d contacts without --yes", n)
	}
	if err := a.store.Clear(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d contacts\n", n)
	return nil
}
