package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/viant/stateaudit/analyzer"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/rules"
	"github.com/viant/stateaudit/config"
	"github.com/viant/stateaudit/internal/logging"
	"github.com/viant/stateaudit/project"
	"github.com/viant/stateaudit/report"
)

func main() {
	app := &cli.App{
		Name:  "stateaudit",
		Usage: "audit hybrid recoil/jotai codebases for migration-safety violations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to stateaudit.yaml"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "report format: text|json|yaml"},
		},
		Commands: []*cli.Command{
			auditCommand(),
			impactCommand(),
			rulesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func auditCommand() *cli.Command {
	return &cli.Command{
		Name:      "audit",
		Usage:     "run the pipeline over a directory and print a report",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("audit requires exactly one path argument", 1)
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			logger := logging.New(c.Bool("verbose"))
			defer logger.Sync()

			files, err := project.New(
				project.WithInclude(cfg.Include...),
				project.WithExclude(cfg.Exclude...),
				project.WithLogger(logger),
			).Load(context.Background(), c.Args().First())
			if err != nil {
				return err
			}

			ruleIDs := toRuleIDs(cfg.Rules)
			a := analyzer.New(analyzer.WithCapabilityProfile(cfg.Capabilities), analyzer.WithRules(ruleIDs...))
			rep := a.Analyze(files)
			return writeReport(c, rep.Result, rep.Violations)
		},
	}
}

func impactCommand() *cli.Command {
	return &cli.Command{
		Name:      "impact",
		Usage:     "reverse-impact BFS query: who is affected if this state changes",
		ArgsUsage: "<path> <stateId>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("impact requires a path and a stateId", 1)
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			logger := logging.New(c.Bool("verbose"))
			defer logger.Sync()

			files, err := project.New(
				project.WithInclude(cfg.Include...),
				project.WithExclude(cfg.Exclude...),
				project.WithLogger(logger),
			).Load(context.Background(), c.Args().Get(0))
			if err != nil {
				return err
			}

			a := analyzer.New(analyzer.WithCapabilityProfile(cfg.Capabilities))
			rep := a.Analyze(files)
			result := a.Impact(c.Args().Get(1), rep.Result)
			logger.Infow("impact query", "queryId", result.QueryID, "stateId", result.StateID, "hops", len(result.Hops))
			for _, hop := range result.Hops {
				fmt.Printf("depth=%d\tstate=%s\tvia=%s\n", hop.Depth, hop.StateID, hop.Via)
			}
			return nil
		},
	}
}

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "list the four migration-safety rule ids",
		Action: func(c *cli.Context) error {
			for _, id := range rules.IDs() {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	path := c.String("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func toRuleIDs(names []string) []rules.ID {
	ids := make([]rules.ID, len(names))
	for i, n := range names {
		ids[i] = rules.ID(n)
	}
	return ids
}

func writeReport(c *cli.Context, result model.Result, violations []rules.Violation) error {
	switch c.String("format") {
	case "json":
		return report.JSON(os.Stdout, result, violations)
	case "yaml":
		return report.YAML(os.Stdout, result, violations)
	default:
		return report.Text(os.Stdout, result, violations)
	}
}
