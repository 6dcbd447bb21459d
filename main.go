package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/pyproto/config"
	"github.com/pontaoski/pyproto/errors"
	"github.com/pontaoski/pyproto/lexer"
	"github.com/pontaoski/pyproto/parser"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	path := c.String("config")
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
		if c.Bool("verbose") {
			log.Printf("loaded config from %s: %+v", path, cfg)
		}
	}

	if c.IsSet("lookahead") {
		cfg.Lookahead = c.Int("lookahead")
	}
	if c.IsSet("greedy-strings") {
		cfg.GreedyStrings = c.Bool("greedy-strings")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}

	return cfg, cfg.Validate()
}

func readSource(c *cli.Context) (string, string, error) {
	file := c.Args().First()
	if file == "" {
		return "", "", fmt.Errorf("no input file provided")
	}

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return "", "", tracerr.Wrap(err)
	}

	return file, string(data), nil
}

// report prints a lexer or parser failure and exits.
func report(err error) {
	if errors.IsLexical(err) || errors.IsParse(err) {
		fmt.Fprintln(os.Stderr, errors.Cause(err))
		if os.Getenv("PYPROTO_TRACE") != "" {
			tracerr.PrintSourceColor(err)
		}
		os.Exit(1)
	}
	tracerr.PrintSourceColor(err)
	os.Exit(1)
}

func main() {
	app := &cli.App{
		Name:  "pyproto",
		Usage: "tokenize and parse pyproto sources",
		ExitErrHandler: func(context *cli.Context, err error) {
			if err != nil {
				log.Fatalf("error with pyproto: %v", err)
			}
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML or TOML settings file",
			},
			&cli.IntFlag{
				Name:  "lookahead",
				Value: parser.DefaultLookahead,
			},
			&cli.BoolFlag{
				Name:  "greedy-strings",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "sexpr or repr",
				Value: config.FormatSExpr,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default settings file",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						path = config.DefaultFile
					}
					if err := config.Write(path, config.Default()); err != nil {
						fmt.Printf("error creating %s: %s", path, err)
						os.Exit(1)
					}
					if c.Bool("verbose") {
						log.Printf("wrote %s", path)
					}
					return nil
				},
			},
			{
				Name:  "tokens",
				Usage: "dump the token stream of a file",
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					file, src, err := readSource(c)
					if err != nil {
						return err
					}

					var opts []lexer.Option
					if cfg.GreedyStrings {
						opts = append(opts, lexer.GreedyStrings())
					}
					tokens, err := lexer.NewLexer(src, file, opts...).All()
					if err != nil {
						report(err)
					}

					if cfg.Format == config.FormatRepr {
						repr.Println(tokens)
						return nil
					}
					for _, tok := range tokens {
						fmt.Printf("%s\t%s\n", tok.Location.From, tok)
					}
					return nil
				},
			},
			{
				Name:  "parse",
				Usage: "parse a file and print its statements",
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					file, src, err := readSource(c)
					if err != nil {
						return err
					}

					opts := append(cfg.ParserOptions(), parser.WithFilename(file))
					prog, err := parser.Parse(src, opts...)
					if err != nil {
						report(err)
					}
					if c.Bool("verbose") {
						log.Printf("parsed %d statements from %s", len(prog), file)
					}

					if cfg.Format == config.FormatRepr {
						repr.Println(prog)
						return nil
					}
					fmt.Println(prog)
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
