package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

const snippetLength = 200

var (
	searchFilters []string
	searchPage    int
	searchJSON    bool
	searchHTML    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the archive",
	Long: `Searches the archive and prints one page of results.

Quoted phrases are matched as a whole. AND, OR and NOT are search operators
and are not highlighted; words starting with - or + are excluded from
highlighting.

Examples:
  sercha-view search elephant
  sercha-view search '"african elephant" NOT circus' --filter science
  sercha-view search elephant --page 2 --json`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchFilters, "filter", "f", nil, "category filter (repeatable, default all)")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "result page")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchHTML, "html", false, "output rendered HTML result blocks")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	req := domain.SearchRequest{
		Query:   strings.Join(args, " "),
		Filters: searchFilters,
		Page:    searchPage,
	}

	page, err := searchService.Search(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch {
	case searchJSON:
		return outputSearchJSON(cmd, page)
	case searchHTML:
		outputSearchHTML(cmd, page)
		return nil
	default:
		outputSearchText(cmd, page)
		return nil
	}
}

type searchJSONOutput struct {
	Query      string             `json:"query"`
	Filters    []string           `json:"filters"`
	CountText  string             `json:"count_text"`
	TotalHits  int                `json:"total_hits"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	Results    []resultJSONOutput `json:"results"`
}

type resultJSONOutput struct {
	Source      string `json:"source"`
	Issue       string `json:"issue,omitempty"`
	Date        string `json:"date,omitempty"`
	Page        int    `json:"page"`
	CoverImage  string `json:"cover_image,omitempty"`
	Content     string `json:"content"`
	ContentHTML string `json:"content_html"`
}

func outputSearchJSON(cmd *cobra.Command, page *domain.SearchPage) error {
	out := searchJSONOutput{
		Query:      page.Request.Query,
		Filters:    page.Request.Filters,
		CountText:  page.CountText(),
		TotalHits:  page.Response.TotalHits,
		Page:       page.Response.CurrentPage,
		TotalPages: page.Response.TotalPages,
		Results:    make([]resultJSONOutput, len(page.Rendered)),
	}
	for i, r := range page.Rendered {
		out.Results[i] = resultJSONOutput{
			Source:      r.Result.Source,
			Issue:       r.Result.Issue,
			Date:        r.Result.Date,
			Page:        r.Result.Page,
			CoverImage:  r.Result.CoverImage,
			Content:     r.Result.Content,
			ContentHTML: r.ContentHTML,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchHTML(cmd *cobra.Command, page *domain.SearchPage) {
	for _, r := range page.Rendered {
		cmd.Println(r.BlockHTML)
	}
}

func outputSearchText(cmd *cobra.Command, page *domain.SearchPage) {
	if page.Empty() {
		cmd.Println(domain.NoResultsMessage)
		return
	}

	highlight := func(s string) string { return s }
	if renderService != nil {
		highlight = renderService.Highlighter(page.Terms, terminalMarker(cmd.OutOrStdout()))
	}

	cmd.Println(page.CountText())
	cmd.Println()
	for i, r := range page.Rendered {
		labels := append([]string{r.Result.Source}, r.Result.SubLabels()...)
		labels = append(labels, r.Result.PageLabel())
		cmd.Printf("  [%d] %s\n", i+1, strings.Join(labels, " · "))

		snippet := highlight(list.Snippet(r.Result.Content, snippetLength))
		if snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
		cmd.Println()
	}

	if p := page.Pagination(); p.Visible {
		cmd.Printf("Page %s (use --page to navigate)\n", p.Label())
	}
}

// terminalMarker highlights matches in reverse video on a terminal and
// leaves them unmarked otherwise.
func terminalMarker(w io.Writer) domain.Marker {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func(s string) string { return s }
	}
	style := lipgloss.NewStyle().Bold(true).Reverse(true)
	return func(s string) string { return style.Render(s) }
}
