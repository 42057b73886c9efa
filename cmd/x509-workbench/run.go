// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/x509-workbench/src/cli"
	"github.com/H0llyW00dzZ/x509-workbench/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-workbench/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Buffered so the goroutine never blocks after a signal.
	done := make(chan error, 1)
	go func() { done <- cli.Execute(ctx, version) }()

	select {
	case <-sigs:
		log.Println("\nReceived termination signal. Exiting...")
		cancel()
		os.Exit(130)
	case err := <-done:
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	}
}
