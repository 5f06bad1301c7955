package main

import (
	"os"

	"github.com/bellows-cli/bellows/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.GenerateCmd())
	rootCmd.AddCommand(commands.ValidateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
