package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var askQuestion string

var askCmd = &cobra.Command{
	Use:   "ask [file.pdf]",
	Short: "Answer a question about a local PDF without starting the server",
	Long: `Run the full pipeline once against a local PDF: extract, chunk, embed,
index, then answer the given question and print the sources.

Examples:
  pdfqa ask report.pdf -q "What are the key findings?"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "question to answer (required)")
	askCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	// Embedding dominates ingest time, so show progress per batch.
	var bar *progressbar.ProgressBar
	p.ingestor.OnProgress = func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Embedding"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
			)
		}
		_ = bar.Set(done)
	}

	res, err := p.ingestor.Ingest(path, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", path, err)
	}
	fmt.Printf("Indexed %s: %d pages, %d chunks\n\n", res.Filename, res.Pages, res.Chunks)

	answer, err := p.answerer.Answer(askQuestion)
	if err != nil {
		return err
	}

	fmt.Println(answer.Text)
	if len(answer.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, src := range answer.Sources {
			fmt.Printf("  [page %s] %s\n", src.Page, src.Content)
		}
	}
	return nil
}
