package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/zerfoo/zcaffe/pkg/converter"
	"github.com/zerfoo/zcaffe/pkg/downloader"
	"github.com/zerfoo/zcaffe/pkg/importer"
	"github.com/zerfoo/zcaffe/pkg/inspector"
	"github.com/zerfoo/zcaffe/pkg/ir"
)

const defaultLogFile = "zcaffe-converter.log"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by all commands.
type app struct {
	logger  *logrus.Logger
	logFile *os.File
}

func newApp() *cli.Command {
	a := &app{logger: logrus.New()}
	return &cli.Command{
		Name:  "zcaffe",
		Usage: "convert Caffe models to ZMF",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level: trace, debug, info, warn, error",
				Value:   "info",
				Sources: cli.EnvVars("ZCAFFE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "file receiving the log, empty for stderr",
				Value:   defaultLogFile,
				Sources: cli.EnvVars("ZCAFFE_LOG_FILE"),
			},
		},
		Before: a.setupLogging,
		After:  a.closeLog,
		Commands: []*cli.Command{
			a.convertCmd(),
			a.inspectCmd(),
			a.downloadCmd(),
		},
	}
}

func (a *app) setupLogging(ctx context.Context, c *cli.Command) (context.Context, error) {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return ctx, err
	}
	a.logger.SetLevel(level)

	path := c.String("log-file")
	if path == "" {
		a.logger.SetOutput(os.Stderr)
		return ctx, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return ctx, fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f
	a.logger.SetOutput(f)
	return ctx, nil
}

func (a *app) closeLog(context.Context, *cli.Command) error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func stdout(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func withoutExt(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func (a *app) convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert a Caffe network and its weights to a ZMF file",
		ArgsUsage: "<net.prototxt> [weights.caffemodel]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "path for the converted ZMF file"},
			&cli.StringSliceFlag{Name: "outputs", Usage: "tensor names exposed as model outputs"},
			&cli.StringFlag{Name: "param-dtype", Usage: "storage type of parameters: float32 or float16", Value: "float32"},
			&cli.StringFlag{Name: "graph-name", Usage: "name of the converted graph, defaults to the network name"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			prototxt := c.Args().Get(0)
			caffemodel := c.Args().Get(1)
			if prototxt == "" {
				return errors.New("network definition is required for 'convert' command")
			}

			outputFile := c.String("output")
			if outputFile == "" {
				outputFile = withoutExt(prototxt) + ".zmf"
			}

			dtype, err := ir.ParseDType(strings.ToLower(c.String("param-dtype")))
			if err != nil {
				return err
			}
			opts := []converter.Option{
				converter.WithLogger(a.logger),
				converter.WithParamDType(dtype),
				converter.WithGraphName(c.String("graph-name")),
			}
			if outputs := c.StringSlice("outputs"); len(outputs) > 0 {
				opts = append(opts, converter.WithOutputs(outputs...))
			}

			w := stdout(c)
			fmt.Fprintf(w, "Converting Caffe model from: %s\n", prototxt)
			result, err := importer.ConvertCaffeToZmf(prototxt, caffemodel, nil, opts...)
			if err != nil {
				return err
			}
			if err := importer.SaveModel(result.Model, outputFile); err != nil {
				return err
			}

			fmt.Fprintf(w, "Model outputs: %s\n", strings.Join(result.Outputs, ", "))
			if n := len(result.Diagnostics.Dangling); n > 0 {
				fmt.Fprintf(w, "Warning: %d intermediate tensors are never consumed\n", n)
			}
			fmt.Fprintf(w, "Successfully converted and saved model to: %s\n", outputFile)
			return nil
		},
	}
}

func (a *app) inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "print a summary of a Caffe or ZMF model",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Usage: "type of model to inspect: 'caffe' or 'zmf'"},
			&cli.StringFlag{Name: "weights", Usage: "caffemodel file to list alongside a Caffe network"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			inputFile := c.Args().First()
			if inputFile == "" {
				return errors.New("input file is required for 'inspect' command")
			}

			fileType := strings.ToLower(c.String("type"))
			if fileType == "" {
				switch ext := strings.ToLower(filepath.Ext(inputFile)); ext {
				case ".prototxt", ".pt":
					fileType = "caffe"
				case ".zmf":
					fileType = "zmf"
				default:
					return fmt.Errorf("could not infer file type from extension '%s', please specify --type", ext)
				}
			}

			switch fileType {
			case "caffe":
				return inspector.InspectCaffe(stdout(c), inputFile, c.String("weights"))
			case "zmf":
				return inspector.InspectZMF(stdout(c), inputFile)
			}
			return fmt.Errorf("unsupported model type '%s', must be 'caffe' or 'zmf'", fileType)
		},
	}
}

func (a *app) downloadCmd() *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "download a Caffe model from HuggingFace Hub",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "model", Usage: "HuggingFace model ID", Required: true},
			&cli.StringFlag{Name: "output", Usage: "output directory for downloaded files", Value: "."},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "HuggingFace API key for authenticated downloads",
				Sources: cli.EnvVars("HF_API_KEY"),
			},
			&cli.StringFlag{Name: "api-url", Usage: "model info endpoint", Sources: cli.EnvVars("HUGGINGFACE_API_URL")},
			&cli.StringFlag{Name: "cdn-url", Usage: "file download endpoint", Sources: cli.EnvVars("HUGGINGFACE_CDN_URL")},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			modelID := c.String("model")
			outputPath := c.String("output")

			source := downloader.NewHuggingFaceSource(c.String("api-key")).
				WithEndpoints(c.String("api-url"), c.String("cdn-url")).
				WithLogger(a.logger)
			d := downloader.NewDownloader(source)

			w := stdout(c)
			fmt.Fprintf(w, "Downloading model '%s' to '%s'...\n", modelID, outputPath)
			result, err := d.Download(modelID, outputPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "Successfully downloaded network definition to: %s\n", result.ModelPath)
			if result.WeightsPath != "" {
				fmt.Fprintf(w, "Weights: %s\n", result.WeightsPath)
			}
			if len(result.ExtraPaths) > 0 {
				fmt.Fprintln(w, "Downloaded companion files:")
				for _, p := range result.ExtraPaths {
					fmt.Fprintf(w, "  - %s\n", p)
				}
			}
			return nil
		},
	}
}
