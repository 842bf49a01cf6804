package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rabinshresthaaa/CoverPage/config"
	"github.com/rabinshresthaaa/CoverPage/model"
	"github.com/rabinshresthaaa/CoverPage/pkg/docx"
	"github.com/rabinshresthaaa/CoverPage/pkg/logger"
	"github.com/rabinshresthaaa/CoverPage/pkg/metrics"
)

const (
	// Filename is the suggested download name of every generated document.
	Filename    = "LabReportCover.docx"
	ContentType = docx.ContentType

	documentTitle = "Lab Report Cover"
	logoName      = "TU Logo"
	lineName      = "Divider"
)

// Result is a finished document ready to be sent to the client.
type Result struct {
	Data        []byte
	Filename    string
	ContentType string
}

type requesterKey struct{}

// WithRequester records the authenticated user asking for a cover page. The
// name ends up in the document's lastModifiedBy property.
func WithRequester(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, requesterKey{}, username)
}

// RequesterFrom returns the user recorded by WithRequester, or "".
func RequesterFrom(ctx context.Context) string {
	username, _ := ctx.Value(requesterKey{}).(string)
	return username
}

// Assembler builds lab report cover pages. It holds no per-document state
// and is safe for concurrent use as long as its AssetSource is.
type Assembler struct {
	source AssetSource
	logo   config.ImageConfig
	line   config.ImageConfig
}

func NewAssembler(source AssetSource, cfg *config.AssetsConfig) *Assembler {
	return &Assembler{
		source: source,
		logo:   cfg.Logo,
		line:   cfg.Line,
	}
}

// RequiredAssets lists the assets every document needs.
func (a *Assembler) RequiredAssets() []string {
	names := []string{a.logo.Name}
	if a.line.Name != "" {
		names = append(names, a.line.Name)
	}
	return names
}

// Generate renders input as a .docx cover page.
func (a *Assembler) Generate(ctx context.Context, input model.CoverPageInput) (*Result, error) {
	start := time.Now()
	result, err := a.generate(ctx, input)
	metrics.AssemblyDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CoversGenerated.WithLabelValues(metrics.ResultError).Inc()
		logger.Error(ctx, "Failed to generate cover page", "subject", input.SubjectName, "error", err)
		return nil, err
	}

	metrics.CoversGenerated.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.DocumentBytes.Observe(float64(len(result.Data)))
	logger.Info(ctx, "Cover page generated",
		"subject", input.SubjectName,
		"requested_by", RequesterFrom(ctx),
		"bytes", len(result.Data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (a *Assembler) generate(ctx context.Context, input model.CoverPageInput) (*Result, error) {
	pkg := docx.NewPackage()
	if _, err := pkg.SetStyles(DefaultStyles()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	pkg.SetCoreProperties(docx.CoreProperties{
		Title:   documentTitle,
		Subject: input.SubjectName,
		Creator: input.StudentName,

		LastModifiedBy: RequesterFrom(ctx),
	})

	blocks := []docx.Block{
		CenterText(universityName, universitySize, true, TightSpacing()),
		CenterText(instituteName, instituteSize, true, TightSpacing()),
		CenterText(campusName, campusSize, true, TightSpacing()),
		Spacer(gapAfterHeader),
	}

	logo, err := a.embed(ctx, pkg, a.logo, logoName)
	if err != nil {
		return nil, err
	}
	blocks = append(blocks, logo)

	if a.line.Name != "" {
		line, err := a.embed(ctx, pkg, a.line, lineName)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, line)
	}

	blocks = append(blocks,
		Spacer(gapAfterLogo),
		CenterText(input.SubjectName, subjectSize, true, TightSpacing()),
		CenterText(reportLabel, reportLabelSize, false, TightSpacing()),
		Spacer(gapAfterSubject),
		SubmittedTable(input),
		Spacer(gapAfterInfo),
		SignatureTable(),
	)

	sect := PageSetup()
	data, err := pkg.Bytes(docx.Body{Blocks: blocks, Sect: &sect})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	return &Result{
		Data:        data,
		Filename:    Filename,
		ContentType: ContentType,
	}, nil
}

func (a *Assembler) embed(ctx context.Context, pkg *docx.Package, img config.ImageConfig, name string) (docx.Paragraph, error) {
	asset, err := a.source.Load(ctx, img.Name)
	if err != nil {
		return docx.Paragraph{}, fmt.Errorf("loading %s: %w", img.Name, err)
	}
	logger.Debug(ctx, "embedding image", "asset", img.Name, "bytes", len(asset.Data), "width_px", img.Width, "height_px", img.Height)
	return EmbedImage(pkg, asset, docx.Pixels(img.Width), docx.Pixels(img.Height), name)
}
