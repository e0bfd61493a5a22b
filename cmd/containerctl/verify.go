package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghuser/freightbox/pkg/errexit"
	"github.com/ghuser/freightbox/pkg/iso6346"
)

type verifyResult struct {
	Input      string `json:"input"`
	Code       string `json:"code"`
	Valid      bool   `json:"valid"`
	Owner      string `json:"owner,omitempty"`
	Category   string `json:"category,omitempty"`
	Serial     int    `json:"serial"`
	CheckDigit int    `json:"check_digit"`
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <code>...",
		Short: "Verify ISO 6346 identifiers",
		Long: `Verify the check digit of one or more identifiers. Whitespace is ignored
and letters are upper-cased, so "csqu 305438 3" is accepted.

Exits with a non-zero status if any identifier fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]verifyResult, 0, len(args))
			failed := 0
			for _, arg := range args {
				r := verifyResult{Input: arg, Code: iso6346.Normalize(arg)}
				if code, err := iso6346.Parse(r.Code); err == nil {
					r.Valid = true
					r.Owner = code.Owner
					r.Category = string(code.Category)
					r.Serial = code.Serial
					r.CheckDigit = code.CheckDigit
				} else {
					failed++
				}
				results = append(results, r)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				writeJSON(out, results)
			} else {
				for _, r := range results {
					status := "valid"
					if !r.Valid {
						status = "INVALID"
					}
					fmt.Fprintf(out, "%s  %s\n", r.Code, status)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errexit.ErrUnverified, failed, len(args))
			}
			return nil
		},
	}
}
