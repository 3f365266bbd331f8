package describecmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/quailyquaily/cronsay/internal/configutil"
	"github.com/quailyquaily/cronsay/internal/outputfmt"
	"github.com/quailyquaily/cronsay/internal/records"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrFailed is returned when at least one expression could not be described.
// The per-expression errors have already been written to the output.
var ErrFailed = errors.New("one or more expressions could not be described")

type Dependencies struct {
	LoggerFromViper func() (*slog.Logger, error)
}

var deps Dependencies

func NewCommand(d Dependencies) *cobra.Command {
	deps = d
	return newDescribeCmd()
}

func loggerFromViper() *slog.Logger {
	if deps.LoggerFromViper == nil {
		return slog.Default()
	}
	logger, err := deps.LoggerFromViper()
	if err != nil || logger == nil {
		return slog.Default()
	}
	return logger
}

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [expression fields...]",
		Short: "Describe a cron expression in English",
		Long: `Describe a 6 or 7 field cron expression (second minute hour day-of-month month day-of-week [year]).

The fields may be passed as one quoted argument or as separate arguments.
With no arguments, expressions are read one per line from --file or from
standard input when it is not a terminal. Blank lines and lines starting
with # are skipped.`,
		Example: `  cronsay describe "0 30 9 * * MON-FRI"
  cronsay describe 0 0 12 1 JAN '*' 2030
  crontab -l | cut -d' ' -f1-6 | cronsay describe --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputfmt.ParseFormat(configutil.FlagOrViperString(cmd, "format", "output.format"))
			if err != nil {
				return err
			}
			exprs, err := collectExpressions(cmd, args)
			if err != nil {
				return err
			}
			if len(exprs) == 0 {
				return fmt.Errorf("missing cron expression")
			}

			logger := loggerFromViper()
			now := time.Now()
			recs := make([]records.Record, 0, len(exprs))
			for _, expr := range exprs {
				rec := records.Describe(expr, now)
				if rec.Failed() {
					logger.Debug("describe_failed", "expression", rec.Expression, "error", rec.Error)
				} else {
					logger.Debug("describe_ok", "expression", rec.Expression)
				}
				recs = append(recs, rec)
			}

			if err := outputfmt.Write(cmd.OutOrStdout(), format, recs); err != nil {
				return err
			}
			if records.AnyFailed(recs) {
				return ErrFailed
			}
			return nil
		},
	}

	cmd.Flags().String("format", "text", "Output format: text|json|yaml.")
	cmd.Flags().String("file", "", "Read expressions from a file, one per line (- for stdin).")
	return cmd
}

func collectExpressions(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	path, _ := cmd.Flags().GetString("file")
	path = strings.TrimSpace(path)
	switch {
	case path == "-":
		return ReadExpressions(cmd.InOrStdin())
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadExpressions(f)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("missing cron expression (pass it as an argument or pipe it on stdin)")
	}
	return ReadExpressions(in)
}

// ReadExpressions returns the non-blank, non-comment lines of r.
func ReadExpressions(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
