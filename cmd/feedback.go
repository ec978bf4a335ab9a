package main

import (
	"encoding/json"
	"fmt"
	"github.com/maxaizer/fit-core/internal/domain/models"
	"github.com/maxaizer/fit-core/internal/feedback"
	"github.com/maxaizer/fit-core/internal/services"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
	"os"
	"strconv"
	"strings"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Inspect interview feedback",
}

var feedbackDecodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode stored feedback text into the form of an interview type",
	Long:  "Decode feedback text read from a file or stdin. Unreadable feedback decodes to an empty form.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFeedbackDecode,
}

var feedbackShowCmd = &cobra.Command{
	Use:   "show <interview-id>",
	Short: "Show the feedback form recorded for an interview",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedbackShow,
}

var feedbackType string

func init() {
	feedbackDecodeCmd.Flags().StringVarP(&feedbackType, "type", "t", string(models.InterviewQualification),
		"Interview type the feedback belongs to")

	feedbackCmd.AddCommand(feedbackDecodeCmd)
	feedbackCmd.AddCommand(feedbackShowCmd)
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedbackDecode(cmd *cobra.Command, args []string) error {
	input := cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to open feedback file")
		}
		defer file.Close()
		input = file
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		return errors.Wrap(err, "failed to read feedback")
	}

	interviewType := models.InterviewType(strings.TrimSpace(feedbackType))
	if !interviewType.IsValid() {
		fmt.Fprintf(cmd.ErrOrStderr(), "unknown interview type %q, feedback is shown as text\n", interviewType)
	}

	return printPayload(cmd.OutOrStdout(), cmd.ErrOrStderr(), feedback.Decode(interviewType, string(raw)))
}

func runFeedbackShow(cmd *cobra.Command, args []string) error {
	interviewID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid interview id %q: %w", args[0], err)
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	form, err := services.NewInterviewFeedback(a.interviews).Load(cmd.Context(), interviewID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Interview %d, type: %s, decision: %s\n", interviewID, labelText(form.Type), labelText(form.Decision))
	if form.Interview.Score != nil {
		fmt.Fprintf(out, "Score: %d/%d\n", *form.Interview.Score, services.MaxScore)
	}
	return printPayload(out, cmd.ErrOrStderr(), form.Payload)
}

func printPayload(out, errOut io.Writer, payload feedback.Payload) error {
	if generic, ok := payload.(feedback.Generic); ok {
		_, err := fmt.Fprintln(out, generic.Feedback)
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	if missing := feedback.MissingFields(payload); len(missing) > 0 {
		fmt.Fprintf(errOut, "missing required fields: %s\n", strings.Join(missing, ", "))
	}
	return nil
}

func labelText(label models.Label) string {
	if label.Recognized {
		return label.Value
	}
	return label.Value + " (unrecognized)"
}
