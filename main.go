package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fzft/go-library-containers/cmd"
	"github.com/fzft/go-library-containers/log"
)

func main() {
	configPath := flag.String("config", "", "path of a TOML config file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("ds-cli", cmd.Version(release, gitSHA1, gitDirty))
		return
	}

	cfg, err := cmd.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := log.InitLogger(cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err = cmd.NewCli(cfg, os.Stdout).Run(os.Stdin)
	if err != nil {
		log.Logger.Error("console stopped", zap.Error(err))
	}
	_ = log.Logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
