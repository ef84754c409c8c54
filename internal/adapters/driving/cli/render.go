package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docsift/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/docsift/internal/core/domain"
)

// previewRunes is the length of refined text shown under a ranked section.
const previewRunes = 120

// stylesFor returns coloured styles when w is a terminal, plain otherwise.
func stylesFor(w io.Writer) *styles.Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return styles.DefaultStyles()
	}
	return styles.PlainStyles()
}

func renderOutline(cmd *cobra.Command, result *domain.OutlineResult) {
	st := stylesFor(cmd.OutOrStdout())

	cmd.Println(st.Title.Render(result.Title))
	if len(result.Outline) == 0 {
		cmd.Println(st.Muted.Render("(no headings)"))
		return
	}
	for _, e := range result.Outline {
		line := fmt.Sprintf("%s %s %s", e.Level, e.Text, st.Muted.Render(fmt.Sprintf("p.%d", e.Page)))
		cmd.Println(st.Level(e.Level).Render(line))
	}
}

func renderBatch(cmd *cobra.Command, report *domain.BatchReport) {
	st := stylesFor(cmd.OutOrStdout())

	for _, f := range report.Files {
		if f.Failed() {
			cmd.Printf("%s %s %s\n", st.Error.Render("✗"), f.Name, st.Muted.Render(f.Err))
			continue
		}
		cmd.Printf("%s %s %s\n", st.Success.Render("✓"), f.Name,
			st.Muted.Render(fmt.Sprintf("%d headings, %.2fs", f.Headings, f.Duration.Seconds())))
	}

	summary := fmt.Sprintf("%d processed, %d failed in %.2fs", report.Processed(), report.Failed(), report.Duration.Seconds())
	if report.Failed() > 0 {
		cmd.Println(st.Warning.Render(summary))
	} else {
		cmd.Println(st.Success.Render(summary))
	}
}

func renderCollection(cmd *cobra.Command, result *domain.CollectionResult) {
	st := stylesFor(cmd.OutOrStdout())
	meta := result.Metadata

	header := fmt.Sprintf("%s\n%s",
		st.Title.Render(meta.Persona),
		st.Muted.Render(meta.Job))
	cmd.Println(st.Border.Render(header))

	if len(result.ExtractedSections) == 0 {
		cmd.Println(st.Muted.Render("No sections selected."))
		return
	}

	for i, s := range result.ExtractedSections {
		cmd.Printf("%s %s %s\n",
			st.Rank.Render(fmt.Sprintf("#%d", s.ImportanceRank)),
			st.Subtitle.Render(s.SectionTitle),
			st.Muted.Render(fmt.Sprintf("%s p.%d", s.Document, s.PageNumber)))
		if i < len(result.SubSectionAnalysis) {
			cmd.Println("   " + st.Normal.Render(preview(result.SubSectionAnalysis[i].RefinedText)))
		}
	}
}

// preview collapses whitespace and truncates text for display.
func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "…"
}
