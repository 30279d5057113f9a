// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/wneessen/go-mimepart/internal/command"
	"github.com/wneessen/go-mimepart/internal/config"
	"github.com/wneessen/go-mimepart/log"
)

func main() {
	cfg, err := config.Load(viper.New())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stderr)
	for _, warning := range cfg.Warnings() {
		logger.Warnf(log.Log{Stage: log.StageHeader, Format: "%s", Messages: []interface{}{warning}})
	}

	root := command.NewRootCommand(command.Dependencies{
		DefaultEncoding: cfg.Encoding(),
		DefaultCharset:  cfg.Charset(),
		Input:           os.Stdin,
		Output:          os.Stdout,
		Logger:          logger,
	})
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if execErr := root.Execute(); execErr != nil {
		logger.Errorf(log.Log{Stage: log.StageSource, Format: "%s", Messages: []interface{}{execErr}})
		os.Exit(1)
	}
}
