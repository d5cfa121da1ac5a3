package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/go-cc/pkg/ccompiler"
	"github.com/spf13/cobra"
)

var (
	outputFile     string
	emitQuadFile   bool
	compileVerbose bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a C source file to GNU-assembler text",
	Long: `Compile reads a C source file, runs it through the lexer, parser, and
code generator, and writes the resulting GNU-assembler text to a .s file.

Examples:
  # Compile a file to prog.s
  ccompile compile prog.c

  # Compile with a custom output path
  ccompile compile prog.c -o build/prog.s

  # Also write the quadruple listing next to the assembly
  ccompile compile prog.c --tac`,
	Args: cobra.ExactArgs(1),
	RunE: compileFile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>.s)")
	compileCmd.Flags().BoolVar(&emitQuadFile, "tac", false, "also write the quadruple listing to <output>.tac")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileFile(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	result, err := ccompiler.Compile(source, filename)
	if err != nil {
		return err
	}

	asmPath := outputFile
	if asmPath == "" {
		asmPath = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".s"
	}
	if err := os.WriteFile(asmPath, []byte(result.Assembly), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", asmPath, err)
	}
	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", asmPath)
	}

	if emitQuadFile {
		tacPath := strings.TrimSuffix(asmPath, filepath.Ext(asmPath)) + ".tac"
		if err := os.WriteFile(tacPath, []byte(result.Quadruple), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", tacPath, err)
		}
		if compileVerbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", tacPath)
		}
	}

	return nil
}
