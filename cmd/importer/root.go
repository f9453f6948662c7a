package main

import (
	"assignment-admin-backend/internal/ingest"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "importer",
		Short:         "Bulk import employees, users and organization details from CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newImportCmd("employees", "Import employees from a CSV file", ingest.KindEmployee),
		newImportCmd("users", "Import users from a CSV file", ingest.KindUser),
		newImportCmd("organization-details", "Import organization details from a CSV file", ingest.KindOrganizationDetail),
	)
	return cmd
}
