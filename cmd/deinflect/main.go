// Command deinflect exposes the deinflection engine on the command line
// and as a JSON REST API.
//
//	deinflect query hablaron
//	deinflect serve --addr :8080
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexeme-tools/deinflect"
	"github.com/lexeme-tools/deinflect/lang"
)

var descriptorFiles []string

var rootCmd = &cobra.Command{
	Use:   "deinflect",
	Short: "Enumerate candidate dictionary forms of an inflected word",
	Long: "deinflect undoes chains of morphological transformations to produce\n" +
		"every plausible dictionary form of a surface word, with the rule\n" +
		"trail that led to each candidate.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&descriptorFiles, "descriptor", nil,
		"extra YAML descriptor file to load (repeatable)")
}

// buildEngine loads the built-in descriptors plus any --descriptor files.
func buildEngine() (*deinflect.Engine, error) {
	b := deinflect.NewBuilder()
	for _, d := range lang.All() {
		if err := b.Load(d); err != nil {
			return nil, fmt.Errorf("load %s: %w", d.Language, err)
		}
	}
	for _, path := range descriptorFiles {
		d, err := deinflect.LoadDescriptorFile(path)
		if err != nil {
			return nil, err
		}
		if err := b.Load(d); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return b.Build(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
