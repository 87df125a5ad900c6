package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all strategy kinds",
	Long:  `Shows every strategy kind that can drive the Mover or the Environment.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Println("No strategies available.")
		return
	}

	fmt.Println("Available strategies:")
	fmt.Println()

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, info := range infos {
		if len(info.Kind) > maxKindLen {
			maxKindLen = len(info.Kind)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxKindLen, "Kind", "Status", "Description")
	fmt.Printf("  %-*s  %-7s  %s\n", maxKindLen, "----", "------", "-----------")

	for _, info := range infos {
		status := "ready"
		if !info.Implemented {
			status = "planned"
		}
		fmt.Printf("  %-*s  %-7s  %s\n", maxKindLen, info.Kind, status, info.Description)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --mover <kind> --environment <kind>' to play.")
}
