package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"staff-trainer/trainer"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the training courses and the notes each one drills",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), formatCourses())
	},
}

func formatCourses() string {
	var out strings.Builder
	for i, c := range trainer.Courses() {
		pitches := c.Pitches()
		letters := make([]string, len(pitches))
		for j, p := range pitches {
			letters[j] = string(trainer.LetterName(p))
		}
		fmt.Fprintf(&out, "%d  %-13s %s\n", i+1, c, strings.Join(letters, " "))
	}
	return out.String()
}
