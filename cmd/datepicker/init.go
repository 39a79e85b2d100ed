package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adwaits94/datepicker/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize datepicker in the current directory",
		Long:  "Creates a .datepicker directory with default configuration and a starter idea catalog.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler().Handle(cmd.Context(), cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	if result.CatalogCreated {
		fmt.Printf("Created starter catalog: %s\n", result.CatalogPath)
	} else {
		fmt.Printf("Using existing catalog: %s\n", result.CatalogPath)
	}
	fmt.Println("datepicker initialized successfully!")

	return nil
}
