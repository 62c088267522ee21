package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/Y-yahya/Compiler-Front-end/feedback"
	"github.com/Y-yahya/Compiler-Front-end/frontend"
	"github.com/Y-yahya/Compiler-Front-end/source"
	"github.com/urfave/cli"
)

var errorNoColor bool
var showSymbols bool

// demoSource is parsed when no file arguments are given so the tool can be
// exercised without any input files
const demoSource = "int x = 42;"

func readSourceFiles(args []string) (files []*source.File) {
	var filenames []string

	for _, arg := range args {
		// Try to convert every argument to an absolute path, if not possible,
		// claim the file could not be found. If a path can be produced but has
		// the wrong extension, admit defeat for that argument. If both of these
		// tests are passed, add the absolute file to the `filenames` list
		if abs, err := filepath.Abs(arg); err == nil {
			if path.Ext(abs) == ".tdl" {
				filenames = append(filenames, abs)
			} else {
				fmt.Printf("could not use '%s' with extension '%s'\n", abs, path.Ext(abs))
			}
		} else {
			fmt.Printf("could not find '%s'\n", arg)
		}
	}

	for _, filename := range filenames {
		buf, err := os.ReadFile(filename)

		// If any error is produced during the file read, print the error and
		// quit trying to process this filename
		if err != nil {
			fmt.Println(err.Error())
			continue
		}

		files = append(files, source.NewFile(filename, string(buf)))
	}

	return files
}

// digestFile parses a file, prints the AST on success, and collects any
// messages emitted by the parse and the symbol-table pass
func digestFile(file *source.File) (msgs []feedback.Message) {
	ast, msg := frontend.Parse(file)

	if msg != nil {
		return append(msgs, msg)
	}

	table, checkMsgs := frontend.Check(file, ast)
	msgs = append(msgs, checkMsgs...)

	fmt.Println(frontend.StringifyAST(ast))

	if showSymbols {
		name := ast.Assignee.Name
		if table.Exists(name) {
			fmt.Printf("%s : %s\n", name, table.TypeOf(name))
		}
	}

	return msgs
}

func main() {
	app := cli.NewApp()
	app.Name = "tdl"
	app.Usage = "front-end for a tiny typed-declaration language"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "no-color",
			Usage:       "hide colors in error and warning messages",
			Destination: &errorNoColor,
		},
		cli.BoolFlag{
			Name:        "symbols",
			Usage:       "show the symbol table recorded for each file",
			Destination: &showSymbols,
		},
	}

	app.Action = func(c *cli.Context) error {
		files := readSourceFiles(c.Args())

		// With no usable file arguments, fall back to the built-in demo
		if len(files) == 0 {
			files = append(files, source.NewFile("<demo>", demoSource))
		}

		for _, f := range files {
			msgs := digestFile(f)

			if len(msgs) > 0 {
				fmt.Printf("# %s\n", f.Filename)

				for _, msg := range msgs {
					fmt.Println(msg.Make(!errorNoColor))
				}
			}
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
