package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-cc/pkg/ccompiler"
	"github.com/spf13/cobra"
)

var quadCmd = &cobra.Command{
	Use:   "quad [file]",
	Short: "Print the quadruple (three-address-code) listing for a C source file",
	Long: `Quad compiles a C source file and prints the resulting quadruple
listing. The generated assembly is not written anywhere.`,
	Args: cobra.ExactArgs(1),
	RunE: printQuad,
}

func init() {
	rootCmd.AddCommand(quadCmd)
}

func printQuad(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	result, err := ccompiler.Compile(string(content), filename)
	if err != nil {
		return err
	}

	fmt.Print(result.Quadruple)
	return nil
}
