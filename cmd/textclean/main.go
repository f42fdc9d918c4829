// Package main provides the text cleaning stage command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/iryzhkov/nlp-pipeline/internal/config"
	"github.com/iryzhkov/nlp-pipeline/internal/logger"
	"github.com/iryzhkov/nlp-pipeline/internal/stage"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string   `help:"Path to YAML config file." type:"path" short:"c"`
	EnvFile  []string `help:"Dotenv files to load before reading NLP_* variables." name:"env-file" default:".env"`
	TmpPath  string   `help:"Directory holding <topic>.raw.txt and <topic>.clean.txt." name:"tmp-path" type:"path"`
	LogLevel string   `help:"Log level (debug, info, warn, error)." name:"log-level"`
}

// load resolves the configuration: file, then environment, then flags.
func (g *Globals) load() (*config.Config, error) {
	if err := config.LoadDotEnv(g.EnvFile...); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, err
	}

	if g.TmpPath != "" {
		cfg.Pipeline.TmpPath = g.TmpPath
	}

	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

// CleanCmd runs the text cleaning stage for a topic.
type CleanCmd struct {
	Topic       string `arg:"" help:"Topic whose raw corpus should be cleaned."`
	NoLemmatize bool   `help:"Skip dictionary lemmatization." name:"no-lemmatize"`
}

// Run executes the stage.
func (c *CleanCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	if c.NoLemmatize {
		cfg.Cleaning.Lemmatize = false
	}

	log := logger.NewLogger(cfg.Logging.Level)

	s, err := stage.NewFromConfig(cfg, log)
	if err != nil {
		return err
	}

	s.PreRun()

	report, err := s.Run(c.Topic)
	if err != nil {
		log.Error("Text cleaning failed", "topic", c.Topic, "error", err)
		return err
	}

	fmt.Printf("%s -> %s (%d articles, ~%d tokens)\n",
		report.Paths.Input, report.Paths.Output, report.Stats.Articles, report.Stats.Tokens)

	return nil
}

// CheckCmd validates a previously cleaned corpus.
type CheckCmd struct {
	Topic string `arg:"" help:"Topic whose cleaned corpus should be checked."`
}

// Run executes the check.
func (c *CheckCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	cfg.Cleaning.Lemmatize = false

	s, err := stage.NewFromConfig(cfg, logger.NewLogger(cfg.Logging.Level))
	if err != nil {
		return err
	}

	result, err := s.Check(c.Topic)
	if err != nil {
		return err
	}

	for _, e := range result.Errors {
		fmt.Printf("ERROR   %s\n", e.Error())
	}

	for _, w := range result.Warnings {
		fmt.Printf("WARNING %s\n", w)
	}

	fmt.Println(result.Stats.String())

	if !result.IsValid {
		return fmt.Errorf("corpus for %q failed %d checks", c.Topic, len(result.Errors))
	}

	return nil
}

// InitConfigCmd writes the effective configuration to a YAML file.
type InitConfigCmd struct {
	Path string `arg:"" help:"Destination YAML file." type:"path"`
}

// Run writes the file.
func (c *InitConfigCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	if err := cfg.SaveConfig(c.Path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", c.Path)

	return nil
}

// CLI is the root command.
var CLI struct {
	Globals

	Clean      CleanCmd      `cmd:"" help:"Clean <topic>.raw.txt into <topic>.clean.txt."`
	Check      CheckCmd      `cmd:"" help:"Validate <topic>.clean.txt."`
	InitConfig InitConfigCmd `cmd:"" name:"init-config" help:"Write the effective configuration as YAML."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("textclean"),
		kong.Description("Text cleaning stage of the NLP pipeline"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if err := ctx.Run(&CLI.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
