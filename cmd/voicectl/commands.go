package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Raikerian/go-voice-auth/internal/enrollment"
	"github.com/Raikerian/go-voice-auth/pkg/voiceprint"
)

type rootOptions struct {
	base64 bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "voicectl",
		Short:         "Inspect and compare voice samples offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.base64, "base64", false, "Treat input files as base64 text (data: URLs accepted)")

	root.AddCommand(newExtractCmd(opts))
	root.AddCommand(newFingerprintCmd(opts))
	root.AddCommand(newCompareCmd(opts))

	return root
}

func newExtractCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract FILE",
		Short: "Print the feature vector of a sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := opts.readSample(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), voiceprint.Extract(sample))
		},
	}
}

func newFingerprintCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint FILE",
		Short: "Print the fingerprint of a sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := opts.readSample(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"fingerprint": voiceprint.Fingerprint(sample),
			})
		},
	}
}

type compareResult struct {
	Stored    voiceprint.Features       `json:"stored"`
	Captured  voiceprint.Features       `json:"captured"`
	Breakdown voiceprint.ScoreBreakdown `json:"breakdown"`
	Score     float64                   `json:"score"`
	Threshold float64                   `json:"threshold"`
	Accepted  bool                      `json:"accepted"`
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "compare STORED CAPTURED",
		Short: "Score a captured sample against a stored one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold <= 0 || threshold > 1 {
				return fmt.Errorf("threshold must be in (0, 1], got %v", threshold)
			}

			storedSample, err := opts.readSample(args[0])
			if err != nil {
				return err
			}
			capturedSample, err := opts.readSample(args[1])
			if err != nil {
				return err
			}

			stored := voiceprint.Extract(storedSample)
			captured := voiceprint.Extract(capturedSample)
			breakdown := voiceprint.Breakdown(stored, captured)

			return printJSON(cmd.OutOrStdout(), compareResult{
				Stored:    stored,
				Captured:  captured,
				Breakdown: breakdown,
				Score:     breakdown.Total,
				Threshold: threshold,
				Accepted:  breakdown.Accepted(threshold),
			})
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", voiceprint.DefaultThreshold, "Acceptance threshold")

	return cmd
}

func (o *rootOptions) readSample(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !o.base64 {
		return data, nil
	}
	return enrollment.DecodeSample(string(data))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
