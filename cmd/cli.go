package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/fzft/go-library-containers/commands"
	"github.com/fzft/go-library-containers/log"
)

// Cli runs console lines against a single session.
type Cli struct {
	config  *Config
	session *commands.Session
	out     io.Writer
}

func NewCli(config *Config, out io.Writer) *Cli {
	return &Cli{
		config:  config,
		session: commands.NewSession(config.Containers),
		out:     out,
	}
}

// Version renders a release with its git commit and dirty marker when known.
func Version(release, gitSHA1, gitDirty string) string {
	if !isCommitHash(gitSHA1) {
		return release
	}
	version := fmt.Sprintf("%s (git:%s", release, gitSHA1)
	if dirty, err := strconv.Atoi(gitDirty); err == nil && dirty != 0 {
		version += "-dirty"
	}
	return version + ")"
}

// isCommitHash accepts any non-empty hex string that is not all zeros.
func isCommitHash(s string) bool {
	return s != "" &&
		strings.Trim(s, "0123456789abcdefABCDEF") == "" &&
		strings.Trim(s, "0") != ""
}

// Run reads from in interactively when it is a terminal, otherwise as a
// script.
func (cli *Cli) Run(in *os.File) error {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return cli.Repl()
	}
	return cli.RunScript(in)
}

// Repl reads lines with editing, completion and history until QUIT or EOF.
// Command errors are printed and do not stop the loop.
func (cli *Cli) Repl() error {
	ln := NewLineNoise(cli.session.CommandNames())
	defer ln.Close()

	historyFile := cli.config.Cli.HistoryFile
	if historyFile != "" {
		if err := ln.HistoryLoad(historyFile); err != nil {
			log.Logger.Warn("cannot load history", zap.String("file", historyFile), zap.Error(err))
		}
	}

	for !cli.session.Quit() {
		line, err := ln.Prompt(cli.config.Cli.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if err := cli.execLine(line); err != nil {
			fmt.Fprintf(cli.out, "(error) %v\n", err)
		}
	}

	if historyFile != "" {
		if err := ln.HistorySave(historyFile); err != nil {
			log.Logger.Warn("cannot save history", zap.String("file", historyFile), zap.Error(err))
		}
	}
	return nil
}

// RunScript executes every line of r, stopping early only on QUIT. It
// returns a MultiError naming each failed line.
func (cli *Cli) RunScript(r io.Reader) error {
	var errs MultiError
	scanner := bufio.NewScanner(r)
	for n := 1; !cli.session.Quit() && scanner.Scan(); n++ {
		if err := cli.execLine(scanner.Text()); err != nil {
			fmt.Fprintf(cli.out, "(error) %v\n", err)
			errs = append(errs, fmt.Errorf("line %d: %w", n, err))
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (cli *Cli) execLine(line string) error {
	reply, err := cli.session.Exec(line)
	if err != nil {
		return err
	}
	if reply != nil {
		fmt.Fprintln(cli.out, reply.String())
	}
	return nil
}
