package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/nsxbet/datadict/pkg/config"
	"github.com/nsxbet/datadict/pkg/render"
	"github.com/nsxbet/datadict/pkg/reviewer"
	"github.com/nsxbet/datadict/pkg/sample"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// errFindings is returned when --fail-on-error or --fail-on-warning trips.
var errFindings = errors.New("validation findings exceed the configured threshold")

// settings reads the resolved CLI settings and checks the output format.
func settings() (*config.Settings, error) {
	s := config.FromViper(viper.GetViper())
	switch s.Output {
	case config.OutputText, config.OutputJSON, config.OutputYAML:
		return s, nil
	default:
		return nil, errors.Errorf("unsupported output format: %s", s.Output)
	}
}

// newReviewer builds a Reviewer for the configured dictionary, falling back to
// the embedded sample.
func newReviewer(s *config.Settings) (*reviewer.Reviewer, error) {
	opts := []reviewer.Option{reviewer.WithDDLCheck(s.CheckDDL)}
	if len(s.Destinations) > 0 {
		opts = append(opts, reviewer.WithDestinations(s.Destinations...))
	}

	if s.Dictionary == "" {
		slog.Info("No dictionary given, using the embedded sample", "table", sample.Table)
		return reviewer.NewDictionary(sample.Dictionary(), opts...), nil
	}
	r, err := reviewer.NewFromFile(s.Dictionary, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load dictionary %s", s.Dictionary)
	}
	return r, nil
}

// writeStructured writes v as JSON or YAML and reports whether format was
// one of those.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case config.OutputJSON:
		return true, render.JSON(w, v)
	case config.OutputYAML:
		return true, render.YAML(w, v)
	default:
		return false, nil
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
