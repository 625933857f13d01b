// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/masonry/config"
	"codeberg.org/pixivfe/masonry/core/audit"
	"codeberg.org/pixivfe/masonry/core/masonry"
)

const (
	envOutputFile  = "deploy/.env.example"
	yamlOutputFile = "deploy/config.yaml.example"
	filePerm       = 0o644
	dirPerm        = 0o755

	// placeholderBreakpoints is written uncommented, since the server
	// refuses to start without breakpoint columns.
	placeholderBreakpoints = "default:4,1200:3,700:2,500:1"

	envFileHeader = `# Masonry configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# Masonry configuration (via configuration file)
#
# Copy this file to config.yaml and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.
`

	breakpointsYAMLComment = `  # -- Either a single column count, or widths mapped to column counts.
  # A width applies when the viewport is no wider than it; "default" is required.`
)

func main() {
	audit.SetDefaultLogger()

	writeFile(envOutputFile, generateEnvFile())

	yamlContent, err := generateYAMLFile()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	writeFile(yamlOutputFile, yamlContent)
}

func writeFile(path, content string) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to create output directory")
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write example file")
	}

	log.Info().Str("path", path).Msg("Successfully generated example file")
}

// exampleConfig returns the defaults plus the placeholder breakpoints.
func exampleConfig() *config.ServerConfig {
	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	cfg.Masonry.BreakpointCols = masonry.MustParseBreakpoints(placeholderBreakpoints)

	return cfg
}

// generateEnvFile renders the deploy/.env.example file.
func generateEnvFile() string {
	cfg := exampleConfig()

	var sb strings.Builder
	sb.WriteString(envFileHeader)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	// Iterate over the top-level struct fields.
	for i := range typ.NumField() {
		structField := typ.Field(i)
		structValue := val.Field(i)

		if structValue.Kind() != reflect.Struct || structField.Name == "Build" {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n", structField.Name)

		// Iterate over the fields of the nested struct.
		innerTyp := structValue.Type()
		for j := range innerTyp.NumField() {
			field := innerTyp.Field(j)
			value := structValue.Field(j)

			tag, ok := field.Tag.Lookup("env")
			if !ok {
				continue
			}

			envVarName := strings.Split(tag, ",")[0]

			switch {
			case envVarName == "MASONRY_BREAKPOINT_COLS", envVarName == "MASONRY_PORT", envVarName == "MASONRY_HOST":
				// Uncomment essential fields.
				fmt.Fprintf(&sb, "%s=\"%v\"\n", envVarName, value.Interface())
			case value.Kind() == reflect.Slice:
				fmt.Fprintf(&sb, "# %s=%s\n", envVarName, strings.Join(value.Interface().([]string), ","))
			case value.Kind() == reflect.String && value.Len() == 0:
				// Omit the value to prompt user input.
				fmt.Fprintf(&sb, "# %s=\n", envVarName)
			default:
				fmt.Fprintf(&sb, "# %s=%v\n", envVarName, value.Interface())
			}
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// generateYAMLFile renders the deploy/config.yaml.example file.
func generateYAMLFile() (string, error) {
	cfg := exampleConfig()

	var yamlContent strings.Builder
	// Marshal the config to YAML.
	encoderOpts := []yaml.EncodeOption{
		config.GetDurationEncoderOption(),
		yaml.Indent(2),
	}
	if err := yaml.NewEncoder(&yamlContent, encoderOpts...).Encode(cfg); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	// breakpointIndent is the indentation of the breakpointCols key while
	// its nested mapping is being copied, -1 otherwise.
	breakpointIndent := -1

	// Process the marshaled YAML line-by-line to create a clean template.
	for line := range strings.SplitSeq(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))

		// Top-level keys (e.g., "basic:") are treated as section headers.
		if indentSize == 0 {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		// Keep the breakpoints and their comment uncommented.
		if strings.HasPrefix(trimmed, "breakpointCols:") {
			sb.WriteString(breakpointsYAMLComment + "\n")
			sb.WriteString(line + "\n")

			breakpointIndent = indentSize

			continue
		}

		if breakpointIndent >= 0 && indentSize > breakpointIndent {
			sb.WriteString(line + "\n")

			continue
		}

		breakpointIndent = -1

		// By default, comment out the line.
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	return sb.String(), nil
}
