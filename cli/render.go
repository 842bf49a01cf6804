package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rabinshresthaaa/CoverPage/config"
	"github.com/rabinshresthaaa/CoverPage/model"
	"github.com/rabinshresthaaa/CoverPage/pkg/docx"
	"github.com/rabinshresthaaa/CoverPage/server"
	"github.com/rabinshresthaaa/CoverPage/service"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

const dateFlagLayout = "2006-01-02"

// renderFlags holds the cover page fields and output options.
type renderFlags struct {
	subject   string
	student   string
	roll      string
	teacher   string
	date      string
	output    string
	assets    string
	printText bool
}

var renderOpts renderFlags

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a cover page to a .docx file",
	Example: `  coverpage render --subject Physics --student "Jane Doe" --roll 12 \
    --teacher "Dr. Smith" --date 2024-03-07 -o cover.docx`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	addRenderFlags(renderCmd.Flags(), &renderOpts)
	for _, name := range []string{"subject", "student", "roll", "teacher", "date"} {
		_ = renderCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(renderCmd)
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.subject, "subject", "", "subject name")
	fs.StringVar(&f.student, "student", "", "student name")
	fs.StringVar(&f.roll, "roll", "", "roll number")
	fs.StringVar(&f.teacher, "teacher", "", "teacher name")
	fs.StringVar(&f.date, "date", "", "submission date (YYYY-MM-DD)")
	fs.StringVarP(&f.output, "output", "o", service.Filename, "output file")
	fs.StringVar(&f.assets, "assets", "", "read images from this directory instead of the configured source")
	fs.BoolVar(&f.printText, "print-text", false, "print the document text after writing it")
}

func runRender(cmd *cobra.Command, _ []string) error {
	date, err := time.Parse(dateFlagLayout, renderOpts.date)
	if err != nil {
		return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", renderOpts.date)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if renderOpts.assets != "" {
		cfg.Assets.Source = config.SourceFile
		cfg.Assets.Dir = renderOpts.assets
	}

	ctx := contextOrBackground(cmd)
	source, err := server.NewAssetSource(ctx, cfg)
	if err != nil {
		return err
	}

	input := model.CoverPageInput{
		SubjectName:    renderOpts.subject,
		StudentName:    renderOpts.student,
		RollNumber:     renderOpts.roll,
		TeacherName:    renderOpts.teacher,
		SubmissionDate: date,
	}
	result, err := service.NewAssembler(source, &cfg.Assets).Generate(ctx, input)
	if err != nil {
		return err
	}

	if err := os.WriteFile(renderOpts.output, result.Data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", renderOpts.output, err)
	}
	cmd.Printf("Wrote %s (%d bytes)\n", renderOpts.output, len(result.Data))

	if renderOpts.printText {
		text, err := docx.ExtractText(result.Data)
		if err != nil {
			return err
		}
		cmd.Println(text)
	}
	return nil
}
