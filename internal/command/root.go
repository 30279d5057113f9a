// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

// Package command implements the commands of the mimepart command line tool.
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wneessen/go-mimepart"
	"github.com/wneessen/go-mimepart/internal/config"
	"github.com/wneessen/go-mimepart/log"
)

// stdinName is the file argument that selects the standard input
const stdinName = "-"

// Dependencies are the external resources used by the commands
type Dependencies struct {
	DefaultEncoding mimepart.Encoding
	DefaultCharset  mimepart.Charset
	Input           io.Reader
	Output          io.Writer
	Logger          log.Logger
}

// NewRootCommand returns the mimepart root command with all subcommands
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "mimepart",
		Short:         "Encode and decode single MIME body parts",
		Version:       mimepart.VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(buildEncodeCommand(dependencies))
	root.AddCommand(buildDecodeCommand(dependencies))
	return root
}

func buildEncodeCommand(dependencies Dependencies) *cobra.Command {
	var (
		encodingInput    string
		typeInput        string
		charsetInput     string
		dispositionInput string
		filenameInput    string
		idInput          string
		idDomainInput    string
		locationInput    string
		descriptionInput string
		languageInput    string
		boundaryInput    string
		generateBoundary bool
		headersOnly      bool
		bodyOnly         bool
	)

	command := &cobra.Command{
		Use:   "encode [file]",
		Short: "Print the MIME headers and the encoded content of a file or the standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoding, err := mimepart.ParseEncoding(encodingInput)
			if err != nil {
				return err
			}

			options := []mimepart.PartOption{
				mimepart.WithPartEncoding(encoding),
				mimepart.WithPartLogger(dependencies.Logger),
			}
			if charsetInput != "" {
				charset, charsetErr := config.NormalizeCharset(mimepart.Charset(charsetInput))
				if charsetErr != nil {
					warnf(dependencies.Logger, log.StageHeader, "using charset as given: %s", charsetErr)
				}
				options = append(options, mimepart.WithPartCharset(charset))
			}
			if typeInput != "" {
				options = append(options, mimepart.WithPartContentType(mimepart.ContentType(typeInput)))
			}
			if dispositionInput != "" {
				options = append(options, mimepart.WithPartDisposition(dispositionInput))
			}
			if filenameInput != "" {
				options = append(options, mimepart.WithPartFilename(filenameInput))
			}
			if idDomainInput != "" {
				idInput = mimepart.NewContentID(idDomainInput)
			}
			if idInput != "" {
				options = append(options, mimepart.WithPartContentID(idInput))
			}
			if locationInput != "" {
				options = append(options, mimepart.WithPartLocation(locationInput))
			}
			if descriptionInput != "" {
				options = append(options, mimepart.WithPartContentDescription(descriptionInput))
			}
			if languageInput != "" {
				options = append(options, mimepart.WithPartLanguage(languageInput))
			}
			if generateBoundary {
				if boundaryInput, err = mimepart.NewBoundary(); err != nil {
					return fmt.Errorf("failed to generate boundary: %w", err)
				}
			}
			if boundaryInput != "" {
				options = append(options, mimepart.WithPartBoundary(boundaryInput))
			}

			part, err := openPart(cmd, dependencies, args, options)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := part.Close(); closeErr != nil {
					warnf(dependencies.Logger, log.StageSource, "failed to close input: %s", closeErr)
				}
			}()

			output := outputWriter(cmd, dependencies)
			switch {
			case headersOnly:
				_, err = io.WriteString(output, part.Headers())
				return err
			case bodyOnly:
				reader, readerErr := part.EncodedReader()
				if readerErr != nil {
					return readerErr
				}
				_, err = io.Copy(output, reader)
				return err
			default:
				written, writeErr := part.WriteTo(output)
				if writeErr != nil {
					return writeErr
				}
				infof(dependencies.Logger, log.StageEncode, "wrote %d bytes of %s encoded part", written,
					part.Encoding)
				return nil
			}
		},
	}

	flags := command.Flags()
	flags.StringVar(&encodingInput, "encoding", defaultEncoding(dependencies).String(),
		"Transfer encoding (7bit, 8bit, base64 or quoted-printable)")
	flags.StringVar(&typeInput, "type", "", "Content type (detected from the file extension by default)")
	flags.StringVar(&charsetInput, "charset", dependencies.DefaultCharset.String(), "Charset parameter of the content type")
	flags.StringVar(&dispositionInput, "disposition", "", "Content disposition (attachment or inline)")
	flags.StringVar(&filenameInput, "filename", "", "Filename parameter of the content disposition")
	flags.StringVar(&idInput, "id", "", "Content identifier")
	flags.StringVar(&idDomainInput, "generate-id", "", "Generate a unique content identifier for the given domain")
	flags.StringVar(&locationInput, "location", "", "Content location")
	flags.StringVar(&descriptionInput, "description", "", "Content description")
	flags.StringVar(&languageInput, "language", "", "Content language")
	flags.StringVar(&boundaryInput, "boundary", "", "Boundary parameter of a multipart content type")
	flags.BoolVar(&generateBoundary, "generate-boundary", false, "Generate a random boundary parameter")
	flags.BoolVar(&headersOnly, "headers-only", false, "Print only the MIME headers")
	flags.BoolVar(&bodyOnly, "body-only", false, "Print only the encoded content")

	command.MarkFlagsMutuallyExclusive("headers-only", "body-only")
	command.MarkFlagsMutuallyExclusive("id", "generate-id")
	command.MarkFlagsMutuallyExclusive("boundary", "generate-boundary")

	return command
}

func buildDecodeCommand(dependencies Dependencies) *cobra.Command {
	var encodingInput string

	command := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode transfer encoded content of a file or the standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoding, err := mimepart.ParseEncoding(encodingInput)
			if err != nil {
				return err
			}

			input := inputReader(cmd, dependencies)
			if len(args) == 1 && args[0] != stdinName {
				file, openErr := os.Open(args[0])
				if openErr != nil {
					return fmt.Errorf("failed to open input: %w", openErr)
				}
				defer func() {
					_ = file.Close()
				}()
				input = file
			}

			decoder, err := mimepart.NewDecodingReader(input, encoding)
			if err != nil {
				return err
			}
			written, err := io.Copy(outputWriter(cmd, dependencies), decoder)
			if err != nil {
				return fmt.Errorf("failed to decode %s content: %w", encoding, err)
			}
			infof(dependencies.Logger, log.StageEncode, "decoded %d bytes of %s content", written, encoding)
			return nil
		},
	}

	command.Flags().StringVar(&encodingInput, "encoding", defaultEncoding(dependencies).String(),
		"Transfer encoding of the input (7bit, 8bit, base64 or quoted-printable)")

	return command
}

// openPart returns a stream Part for the file named in args or for the standard input
func openPart(cmd *cobra.Command, dependencies Dependencies, args []string,
	options []mimepart.PartOption,
) (*mimepart.Part, error) {
	if len(args) == 0 || args[0] == stdinName {
		// the standard input can be a pipe that fails to seek
		input := struct{ io.Reader }{inputReader(cmd, dependencies)}
		return mimepart.NewPartFromReader(input, options...), nil
	}
	part, err := mimepart.NewPartFromFile(args[0], options...)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return part, nil
}

func defaultEncoding(dependencies Dependencies) mimepart.Encoding {
	if dependencies.DefaultEncoding == "" {
		return mimepart.EncodingB64
	}
	return dependencies.DefaultEncoding
}

func inputReader(cmd *cobra.Command, dependencies Dependencies) io.Reader {
	if dependencies.Input != nil {
		return dependencies.Input
	}
	return cmd.InOrStdin()
}

func outputWriter(cmd *cobra.Command, dependencies Dependencies) io.Writer {
	if dependencies.Output != nil {
		return dependencies.Output
	}
	return cmd.OutOrStdout()
}

func infof(logger log.Logger, stage log.Stage, format string, args ...interface{}) {
	if logger == nil {
		return
	}
	logger.Infof(log.Log{Stage: stage, Format: format, Messages: args})
}

func warnf(logger log.Logger, stage log.Stage, format string, args ...interface{}) {
	if logger == nil {
		return
	}
	logger.Warnf(log.Log{Stage: stage, Format: format, Messages: args})
}
