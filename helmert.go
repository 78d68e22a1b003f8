package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"helmert/pkg"

	"github.com/spf13/cobra"
)

func FitCommand() *cobra.Command {

	var trainFile string
	var outputFile string
	var transformedFile string
	var params pkg.EncoderParameters

	var cmd = &cobra.Command{
		Use:   "fit -i trainData -o outputFile",
		Short: "Fits the Helmert encoder on the provided training data and saves the fitted encoder",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pkg.FitFile(trainFile, outputFile, transformedFile, params)
		},
	}

	cmd.Flags().StringVarP(&trainFile, "train-file", "i", "", "name of train file")
	cmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "name of the file to save the fitted encoder to.")
	cmd.Flags().StringVarP(&transformedFile, "transformed-output", "", "", "name of an optional file to write the transformed training data to")
	cmd.Flags().StringSliceVarP(&params.CategoricalColumns, "categorical-columns", "", nil, "list of columns to encode (all string columns if not present)")
	cmd.Flags().BoolVarP(&params.DropInvariant, "drop-invariant", "", false, "drop output columns with near-zero variance on the training data")
	cmd.Flags().BoolVarP(&params.Verbose, "verbose", "v", false, "log per-column fit diagnostics")

	_ = cmd.MarkFlagRequired("train-file")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}

func TransformCommand() *cobra.Command {
	var modelFile string
	var inputFile string
	var outputFile string

	var cmd = &cobra.Command{
		Use:   "transform -m encoderFile -i inputFile [-o outputFile]",
		Short: "Applies a fitted encoder to the specified data input and writes the encoded result",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pkg.TransformFile(modelFile, inputFile, outputFile)
		},
	}

	cmd.Flags().StringVarP(&modelFile, "model", "m", "", "name of the fitted encoder file")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "name of data input file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "name of output file (optional, uses stdout if not present)")

	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("input")

	return cmd

}

var logLevel string
var logFormat string

func main() {

	Main := &cobra.Command{Use: "helmert", PersistentPreRun: setupLogging}

	Main.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Logging level: info error or debug")
	Main.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "Logging format: pretty or json")

	Main.AddCommand(FitCommand())
	Main.AddCommand(TransformCommand())

	if err := Main.Execute(); err != nil {
		panic(err)
	}
}

func setupLogging(cmd *cobra.Command, args []string) {

	switch logLevel {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		panic("Invalid logging level specified")
	}

	switch logFormat {
	case "pretty":
		setupPrettyLogging()
	case "json":
	default:
		panic("Invalid log format specified")

	}

}

func setupPrettyLogging() {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	writer.FormatFieldValue = func(i interface{}) string {
		switch v := i.(type) {
		case json.Number:
			val, _ := v.Float64()
			return fmt.Sprintf("%.3f", val)
		default:
			return fmt.Sprintf("%s", i)
		}

	}
	log.Logger = log.Output(writer)

}
