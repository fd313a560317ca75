// Package main provides the main entrypoint for the project summary tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/projectsummary"
	"go.flow.arcalot.io/projectsummary/config"
	"go.flow.arcalot.io/projectsummary/loadfile"
	"gopkg.in/yaml.v3"
)

// These variables are filled using ldflags during the build process with Goreleaser.
// See https://goreleaser.com/cookbooks/using-main.version/
var (
	version = "development"
	commit  = "unknown"
	date    = "unknown"
)

// ExitCodeOK signals that the program terminated normally.
const ExitCodeOK = 0

// ExitCodeInvalidData signals that the program encountered an invalid configuration or dataset.
const ExitCodeInvalidData = 1

// ExitCodeQueryFailed indicates that the report was written, but at least one of its queries failed.
const ExitCodeQueryFailed = 2

// RequiredFileKeyDataset is the key for the dataset file in hash map of files required for execution.
const RequiredFileKeyDataset = "dataset"

// RequiredFileKeyConfig is the key for the config file in hash map of files required for execution.
const RequiredFileKeyConfig = "config"

func main() {
	tempLogger := log.New(log.Config{
		Level:       log.LevelInfo,
		Destination: log.DestinationStdout,
		Stdout:      os.Stderr,
	})

	configFile := ""
	dir := "."
	datasetFile := "world_bank_projects.json"
	output := ""
	printVersion := false

	flag.BoolVar(&printVersion, "version", printVersion, "Print the project summary version and exit.")
	flag.StringVar(
		&configFile,
		"config",
		configFile,
		"The configuration file to load, if any.",
	)
	flag.StringVar(
		&dir,
		"context",
		dir,
		"The directory relative file names are resolved against. Defaults to the current directory.",
	)
	flag.StringVar(
		&datasetFile,
		"dataset",
		datasetFile,
		"The JSON project dataset to summarize. Defaults to world_bank_projects.json.",
	)
	flag.StringVar(
		&output,
		"output",
		output,
		"The report format, text or yaml. Overrides the configuration file.",
	)
	flag.Usage = func() {
		_, _ = os.Stderr.Write([]byte(`Usage: projectsummary [OPTIONS]

Reads a JSON array of development-bank projects and prints the countries with
the most projects, the most common project themes and the theme names with
missing entries backfilled.

Options:

  -version            Print the project summary version and exit.

  -config FILENAME    The configuration file to load, if any.

  -context DIRECTORY  The directory relative file names are resolved
                      against. Defaults to the current directory.

  -dataset FILENAME   The JSON project dataset to summarize. Defaults to
                      world_bank_projects.json.

  -output FORMAT      The report format, text or yaml. Overrides the
                      configuration file.
`))
	}
	flag.Parse()

	if printVersion {
		fmt.Printf(
			"Project Summary\n"+
				"===============\n"+
				"Version: %s\n"+
				"Commit: %s\n"+
				"Date: %s\n"+
				"Apache 2.0 license\n"+
				"Copyright (c) Arcalot Contributors",
			version, commit, date,
		)
		return
	}

	requiredFiles := map[string]string{
		RequiredFileKeyDataset: datasetFile,
	}
	if configFile != "" {
		requiredFiles[RequiredFileKeyConfig] = configFile
	}

	fileCtx, err := loadfile.NewFileCacheUsingContext(dir, requiredFiles)
	if err != nil {
		flag.Usage()
		tempLogger.Errorf("context path resolution failed %s (%v)", dir, err)
		os.Exit(ExitCodeInvalidData)
	}

	err = fileCtx.LoadContext()
	if err != nil {
		tempLogger.Errorf("Failed to load required files into context (%v)", err)
		flag.Usage()
		os.Exit(ExitCodeInvalidData)
	}

	var configData any = map[string]any{}
	if configFile != "" {
		configData, err = parseYAML(fileCtx, RequiredFileKeyConfig)
		if err != nil {
			tempLogger.Errorf("Failed to load configuration file %s (%v)", configFile, err)
			flag.Usage()
			os.Exit(ExitCodeInvalidData)
		}
	}
	cfg, err := config.Load(configData)
	if err != nil {
		tempLogger.Errorf("Failed to load configuration file %s (%v)", configFile, err)
		flag.Usage()
		os.Exit(ExitCodeInvalidData)
	}
	if output != "" {
		cfg.Output = config.OutputFormat(output)
	}

	// now we are ready to instantiate our main logger
	cfg.Log.Stdout = os.Stderr
	logger := log.New(cfg.Log).WithLabel("source", "main")

	summarizer, err := projectsummary.New(cfg)
	if err != nil {
		logger.Errorf("Failed to initialize summarizer with config file %s (%v)", configFile, err)
		flag.Usage()
		os.Exit(ExitCodeInvalidData)
	}

	data, err := fileCtx.ContentByKey(RequiredFileKeyDataset)
	if err != nil {
		logger.Errorf("Failed to read dataset %s (%v)", datasetFile, err)
		os.Exit(ExitCodeInvalidData)
	}

	os.Exit(runSummary(summarizer, cfg.Output, data, logger))
}

func runSummary(summarizer projectsummary.Summarizer, output config.OutputFormat, data []byte, logger log.Logger) int {
	report, err := summarizer.Summarize(data)
	if err != nil {
		logger.Errorf("Invalid dataset (%v)", err)
		return ExitCodeInvalidData
	}
	switch output {
	case config.OutputYAML:
		if err := report.WriteYAML(os.Stdout); err != nil {
			logger.Errorf("Failed to write report (%v)", err)
			return ExitCodeInvalidData
		}
	case config.OutputText:
		report.WriteText(os.Stdout)
	default:
		logger.Errorf("Unsupported output format %q", output)
		return ExitCodeInvalidData
	}
	if report.Failed() {
		logger.Warningf("The report is incomplete (%v)", report.Err())
		return ExitCodeQueryFailed
	}
	return ExitCodeOK
}

func parseYAML(fileCtx loadfile.FileCache, key string) (any, error) {
	fileContents, err := fileCtx.ContentByKey(key)
	if err != nil {
		return nil, err
	}
	var data any
	if err := yaml.Unmarshal(fileContents, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}
