// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/render"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/inspector"
)

// inspection runs one inspector operation and lays out its report.
type inspection func(in inspector.Input) (*render.Report, error)

func (a *app) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a certificate, CSR or RSA key",
		Long: `Inspect a certificate, certificate signing request or RSA key read from
FILE, or from stdin when FILE is omitted or "-".`,
	}

	cmd.AddCommand(
		a.inspectSubcommand("cert [FILE]", "Inspect a PEM, DER or binary certificate", render.InvalidCertificateMessage,
			func(in inspector.Input) (*render.Report, error) {
				r, err := a.inspector.InspectCertificate(in)
				if err != nil {
					return nil, err
				}
				return render.CertificateReport(r), nil
			}),
		a.inspectSubcommand("csr [FILE]", "Inspect a PEM or DER certificate signing request", render.InvalidCSRMessage,
			func(in inspector.Input) (*render.Report, error) {
				r, err := a.inspector.InspectCSR(in)
				if err != nil {
					return nil, err
				}
				return render.CSRReport(r), nil
			}),
		a.inspectSubcommand("key [FILE]", "Validate an RSA private or public key", render.InvalidKeyMessage,
			func(in inspector.Input) (*render.Report, error) {
				r, err := a.inspector.ValidateKey(in)
				if err != nil {
					return nil, err
				}
				return render.KeyReport(r), nil
			}),
	)
	return cmd
}

func (a *app) inspectSubcommand(use, short, failure string, run inspection) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.reportFormat()
			if err != nil {
				return err
			}

			in, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			var panel render.Panel
			if err := showReport(&panel, run, in, format); err != nil {
				panel.Hide()
				return fmt.Errorf("%s (%w)", failure, err)
			}
			return panel.Flush(cmd.OutOrStdout())
		},
	}
}

func showReport(panel *render.Panel, run inspection, in inspector.Input, format render.Format) error {
	report, err := run(in)
	if err != nil {
		return err
	}
	out, err := report.Render(format)
	if err != nil {
		return err
	}
	panel.Show(out)
	return nil
}

// readInput loads the named file, or stdin when no name (or "-") is given.
// The file name is kept so that .der and .pfx uploads are read as binary.
func readInput(stdin io.Reader, args []string) (inspector.Input, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := readAll(stdin)
		if err != nil {
			return inspector.Input{}, fmt.Errorf("error reading stdin: %w", err)
		}
		return inspector.Input{Data: data}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return inspector.Input{}, fmt.Errorf("error reading input file: %w", err)
	}
	defer f.Close()

	data, err := readAll(f)
	if err != nil {
		return inspector.Input{}, fmt.Errorf("error reading input file: %w", err)
	}
	return inspector.Input{Name: args[0], Data: data}, nil
}

// readAll reads r through a pooled buffer and returns a private copy.
func readAll(r io.Reader) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}
