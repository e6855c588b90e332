// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package commands

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"go.e43.eu/stellarxdr/internal/logger"
	"go.e43.eu/stellarxdr/stellar"
	"go.e43.eu/stellarxdr/stream"
)

func newStreamCmd(g *globals) *cobra.Command {
	var (
		typeName string
		format   string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "stream FILE|-",
		Short: "Decode a record-marked stream of values",
		Long: `Decode every record of a record-marked XDR stream, such as a Stellar
history archive file. Gzip compressed input is detected automatically.

By default one table row is printed per record, followed by a summary
holding the record count, total size and the stream's xxhash digest.

Examples:
  stellarxdr stream --type LedgerEntry ledger-0000003f.xdr.gz
  stellarxdr stream --type SCPEnvelope --format spew --limit 5 scp.xdr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := lookupType(typeName); err != nil {
				return err
			}

			var src io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			r, err := stream.NewReader(src,
				stream.WithMaxRecordSize(uint32(g.cfg.Stream.MaxRecordSize)),
				stream.WithCoder(g.coder()),
				stream.WithLogger(logger.With(logger.KeyFile, args[0], logger.KeyType, typeName)))
			if err != nil {
				return err
			}
			defer r.Close()

			return printStream(cmd.OutOrStdout(), r, typeName, format, limit)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "XDR type of every record")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "record output format (table, spew, json, none)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most this many records (0 for all); every record is still decoded")
	_ = cmd.RegisterFlagCompletionFunc("type", completeTypes)
	return cmd
}

func printStream(w io.Writer, r *stream.Reader, typeName, format string, limit int) error {
	var table *tablewriter.Table
	if format == "table" {
		table = newTable(w, "Record", "Bytes", "Value")
	}

	var total int64
	for {
		start := r.Offset()
		v, _ := stellar.Lookup(typeName)
		err := r.Decode(v)
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Error("stream decode failed", logger.KeyRecord, r.Records(), logger.KeyOffset, start, logger.Err(err))
			return err
		}

		size := r.Offset() - start
		total += size
		index := r.Records() - 1
		if limit > 0 && index >= limit {
			continue
		}

		switch format {
		case "table":
			table.Append([]string{strconv.Itoa(index), strconv.FormatInt(size, 10), summarize(v)})
		case "none":
		default:
			if _, err := fmt.Fprintf(w, "# record %d\n", index); err != nil {
				return err
			}
			if err := printValue(w, v, format); err != nil {
				return err
			}
		}
	}

	if table != nil {
		table.Render()
	}

	logger.Info("stream decoded", logger.KeyRecords, r.Records(), logger.KeyBytes, total)

	summary := newTable(w, "Records", "Size", "Compressed", "Digest")
	summary.Append([]string{
		strconv.Itoa(r.Records()),
		humanize.IBytes(uint64(total)),
		strconv.FormatBool(r.Compressed()),
		fmt.Sprintf("%016x", r.Digest()),
	})
	summary.Render()
	return nil
}

func newTable(w io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

const summaryWidth = 60

// summarize returns a one line description of v: the arm type for unions,
// the Go type otherwise, followed by a truncated rendering of the value
func summarize(v stellar.Codec) string {
	rv := reflect.ValueOf(v).Elem()
	if rv.Kind() == reflect.Struct {
		if f := rv.FieldByName("Arm"); f.IsValid() && f.Kind() == reflect.Interface && !f.IsNil() {
			rv = f.Elem()
		}
	}

	s := fmt.Sprintf("%s %+v", rv.Type().Name(), rv.Interface())
	if len(s) > summaryWidth {
		s = s[:summaryWidth-3] + "..."
	}
	return s
}
