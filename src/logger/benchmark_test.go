// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/x509-workbench/src/logger"
)

func BenchmarkMCPLogger_Printf(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, false)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("inspected certificate %d", i)
	}
}

func BenchmarkMCPLogger_PrintfConcurrent(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, false)

	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			log.Printf("generated %s", "example.com-selfSigned-2024-02-29.crt")
		}
	})
}

func BenchmarkMCPLogger_Silent(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, true)

	b.ReportAllocs()

	for b.Loop() {
		log.Printf("suppressed %s", "message")
	}
}

func BenchmarkCLILogger_Printf(b *testing.B) {
	log := logger.NewCLILogger()
	log.SetOutput(io.Discard)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("wrote %d files", i)
	}
}
