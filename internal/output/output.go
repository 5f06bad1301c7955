// Package output provides styled terminal output for the CLI.
//
// Functions use lipgloss for styling but abstract the details away from
// callers, so command code just reports what happened.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// Called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message in green.
//
// Example:
//
//	output.Success("Created app/Models/Post.php")
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints a failure message in red.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Info prints a status update or explanation in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ " + msg))
}

// Step prints an indented sub-item in gray.
// Use this for actionable next steps.
//
// Example:
//
//	output.Step("php artisan migrate")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Skip prints a skipped-file notice in yellow.
func Skip(msg string) {
	fmt.Println(skipStyle.Render("- " + msg))
}

// Verbose prints a debug message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
