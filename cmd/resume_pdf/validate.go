package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume content JSON file",
	Long:  "Checks a resume content file against the JSON Schema and the field rules the renderer relies on, without rendering it.",
	RunE:  runValidate,
}

var (
	validateInput  string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to resume content JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema to use instead of the built-in one")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaPath := ""
	if validateSchema != "" {
		schemaPath = schemas.ResolveSchemaPath(validateSchema)
		if schemaPath == "" {
			return fmt.Errorf("schema file not found: %s", validateSchema)
		}
	}
	return validateFile(validateInput, schemaPath, cmd.OutOrStdout())
}

// validateFile reports every problem it finds in the content file and returns an
// error when there was at least one. An empty schemaPath uses the built-in schema.
func validateFile(path, schemaPath string, out io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if schemaPath != "" {
		err = schemas.ValidateJSON(schemaPath, path)
	} else {
		err = schemas.ValidateResumeContent(raw)
	}
	if err != nil {
		var schemaErr *schemas.ValidationError
		if !errors.As(err, &schemaErr) {
			return err
		}
		for _, fe := range schemaErr.Errors {
			fmt.Fprintf(out, "✗ %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%s does not match the resume content schema (%d error(s))", path, len(schemaErr.Errors))
	}

	content, err := rendering.DecodeContent(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	if err := content.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			fmt.Fprintf(out, "✗ %s: failed %q rule\n", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%s has %d invalid field(s)", path, len(fieldErrs))
	}

	if _, err := types.NewSkillGrid(content.TopSkills.Skills); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ %s is valid (%d positions, %d skills)\n",
		path, len(content.Experience.Positions), len(content.TopSkills.Skills))
	return nil
}
