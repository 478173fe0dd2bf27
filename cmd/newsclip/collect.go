package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minafoods/newsclip/internal/app"
	"github.com/minafoods/newsclip/internal/metrics"
)

// NewCollectCmd creates the collect subcommand.
func NewCollectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect and rank this week's news",
		Long: `Collect queries Google News once per taxonomy category, keeps articles
published inside the current Friday→Thursday reporting window, ranks them by
keyword relevance, and prints the ranked list.

With --out, the picked articles (--pick indices, or everything with --all)
are written to an .xlsx clipping sheet.`,
		RunE: runCollect,
	}

	cmd.Flags().StringP("out", "o", "", "Write picked articles to this .xlsx file (a directory gets the default file name)")
	cmd.Flags().String("pick", "", "Comma-separated 1-based result indices to export, e.g. 1,3,5")
	cmd.Flags().BoolP("all", "a", false, "Export every collected article")

	return cmd
}

func runCollect(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	pickSpec, _ := cmd.Flags().GetString("pick")
	all, _ := cmd.Flags().GetBool("all")
	if outPath == "" && (pickSpec != "" || all) {
		return fmt.Errorf("--pick and --all need --out to write the clipping sheet")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a := app.New(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "수집 기준일: %s (금) ~ %s (목)\n",
		a.Window.Start.Format("2006-01-02"), a.Window.End.Format("2006-01-02"))

	a.Progress = func(category string, hits int) {
		if hits < 0 {
			fmt.Fprintf(out, "검색: %s ... 실패\n", category)
			return
		}
		fmt.Fprintf(out, "검색: %s ... %d건\n", category, hits)
	}
	results := a.Collect(cmd.Context())

	if len(results) == 0 {
		fmt.Fprintln(out, "수집된 뉴스가 없습니다.")
		return nil
	}

	fmt.Fprintf(out, "수집 완료: %d건\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(out, "%3d. [%s | %s] %s (score %d)\n", i+1, r.Category, r.Publisher, r.Title, r.Score)
		fmt.Fprintf(out, "     %s  %s\n", r.Date.Format("2006-01-02"), r.URL)
	}
	printRunStats(cmd)

	if outPath == "" {
		return nil
	}

	if all || pickSpec == "" {
		a.PickAll()
	} else {
		picks, err := parsePicks(pickSpec, len(results))
		if err != nil {
			return err
		}
		if err := a.Pick(picks...); err != nil {
			return err
		}
	}

	data, name, err := a.Export()
	if err != nil {
		return err
	}

	path := resolveOutPath(outPath, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(out, "\n엑셀 저장: %s (%d건)\n", path, a.Picks.Len())
	return nil
}

func printRunStats(cmd *cobra.Command) {
	stats := metrics.Global.GetStats()
	fmt.Fprintf(cmd.OutOrStdout(),
		"\n검색 %v건 (실패 %v), 기사 %v건 처리, 기간외 %v, 제외어 %v, 중복 %v\n",
		stats["queries_issued"], stats["query_failures"], stats["hits_processed"],
		stats["hits_outside_window"], stats["hits_excluded"], stats["duplicates_filtered"])
}

// parsePicks turns "1,3,5" into validated 1-based indices.
func parsePicks(spec string, max int) ([]int, error) {
	var picks []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid pick %q", part)
		}
		if n < 1 || n > max {
			return nil, fmt.Errorf("pick %d out of range 1..%d", n, max)
		}
		picks = append(picks, n)
	}
	if len(picks) == 0 {
		return nil, fmt.Errorf("no picks in %q", spec)
	}
	return picks, nil
}

// resolveOutPath accepts either a file path or a directory; directories get
// the window-stamped default file name.
func resolveOutPath(out, defaultName string) string {
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, defaultName)
	}
	return out
}
