// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/render"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/generator"
)

// generateFlags holds the generate command's flag values.
type generateFlags struct {
	form     generator.Form
	outDir   string
	stdout   bool
	htmlFile string
}

func (a *app) generateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an RSA key pair, CSR or certificate",
		Long: `Generate an RSA key pair, a certificate signing request, or a self-signed
or code signing certificate. Each artifact is written to the output directory
and the equivalent openssl command is printed.`,
		Example: `  generate --type rsa --key-size 4096
  generate --type csr --cn example.com --alt-names "example.com, www.example.com"
  generate --type selfSigned --cn example.com --country US --validity 2
  generate --type codeSigning --subject "/CN=signer/OU=Build" --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.form.Kind, "type", "t", string(artifact.KindSelfSigned), "artifact type: rsa, csr, selfSigned or codeSigning")
	flags.StringVarP(&f.form.KeySize, "key-size", "k", "", "RSA key size: 1024, 2048, 3072 or 4096 (default from config)")
	flags.StringVarP(&f.form.SignatureDigest, "digest", "d", "", "signature digest: SHA-256, SHA-384 or SHA-512 (default from config)")
	flags.StringVarP(&f.form.ValidityYears, "validity", "v", "", "certificate validity in years (default from config)")
	flags.StringVar(&f.form.CommonName, "cn", "", "subject common name")
	flags.StringVar(&f.form.Organization, "org", "", "subject organization")
	flags.StringVar(&f.form.OrganizationalUnit, "ou", "", "subject organizational unit")
	flags.StringVar(&f.form.City, "city", "", "subject locality")
	flags.StringVar(&f.form.State, "state", "", "subject state or province")
	flags.StringVar(&f.form.Country, "country", "", "subject two-letter country code")
	flags.StringVarP(&f.form.AltNames, "alt-names", "a", "", "comma-separated subject alternative names (DNS by default; IP:, email:, URI: prefixes)")
	flags.StringVarP(&f.form.Subject, "subject", "s", "", `openssl-style subject such as "/CN=a/OU=x/OU=y" (replaces the subject fields)`)
	flags.StringVarP(&f.outDir, "out-dir", "o", "", "directory for generated files (default from config, else the working directory)")
	flags.BoolVar(&f.stdout, "stdout", false, "print artifacts instead of writing files")
	flags.StringVar(&f.htmlFile, "html", "", "also write the HTML output blocks to this file")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, f generateFlags) error {
	d := a.cfg.Defaults
	form := f.form.WithDefaults(d.KeySize, d.SignatureDigest, d.ValidityYears)

	result, err := a.generator.Generate(form)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.stdout {
		fmt.Fprint(out, render.Text(result.Artifacts))
	} else {
		dir := f.outDir
		if dir == "" {
			dir = d.OutputDir
		}
		if err := a.writeArtifacts(dir, result.Artifacts); err != nil {
			return err
		}
	}

	if f.htmlFile != "" {
		blocks, err := render.HTMLBlocks(result.Artifacts)
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.htmlFile, []byte(blocks), 0o644); err != nil {
			return fmt.Errorf("error writing HTML file: %w", err)
		}
		a.log.Printf("wrote %s", f.htmlFile)
	}

	fmt.Fprintf(out, "\nEquivalent OpenSSL Command:\n%s", result.Command)
	if !strings.HasSuffix(result.Command, "\n") {
		fmt.Fprintln(out)
	}
	return nil
}

// writeArtifacts stores each artifact under dir. Private keys are written
// owner-readable only. Every artifact is staged to a temporary file first and
// renamed into place once all writes succeed, so a failure leaves no partial
// set behind.
func (a *app) writeArtifacts(dir string, artifacts []generator.Artifact) (err error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	var staged, placed []string
	defer func() {
		if err == nil {
			return
		}
		for _, name := range append(staged, placed...) {
			os.Remove(name)
		}
	}()

	for _, art := range artifacts {
		perm := os.FileMode(0o644)
		if art.Ext == artifact.ExtKey {
			perm = 0o600
		}
		tmp, err := stageFile(filepath.Join(dir, art.Filename), []byte(art.PEM), perm)
		if tmp != "" {
			staged = append(staged, tmp)
		}
		if err != nil {
			return fmt.Errorf("error writing %s: %w", art.Title, err)
		}
	}

	for _, art := range artifacts {
		path := filepath.Join(dir, art.Filename)
		if err := os.Rename(staged[0], path); err != nil {
			return fmt.Errorf("error writing %s: %w", art.Title, err)
		}
		staged = staged[1:]
		placed = append(placed, path)
	}

	for _, art := range artifacts {
		a.log.Printf("wrote %s: %s", art.Title, filepath.Join(dir, art.Filename))
	}
	return nil
}

// stageFile writes data to a temporary file beside path and returns its name.
func stageFile(path string, data []byte, perm os.FileMode) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if err := f.Chmod(perm); err != nil {
		f.Close()
		return name, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return name, err
	}
	return name, f.Close()
}
