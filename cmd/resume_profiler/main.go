// Package main provides the entry point for the resume profiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_profiler",
	Short: "Deterministic resume parsing and interview preparation CLI",
	Long:  "Resume Profiler extracts a structured candidate profile from PDF and DOCX resumes and derives interview preparation modules, using only deterministic rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
