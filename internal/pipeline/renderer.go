package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clauscan/clauscan/internal/model"
	"github.com/clauscan/clauscan/internal/report"
)

// Renderer writes analysis output files and the stdout summary
type Renderer struct {
	synthesizer *report.Synthesizer
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{synthesizer: report.NewSynthesizer(includeFooter)}
}

// RenderJSON writes the analysis as indented JSON
func (r *Renderer) RenderJSON(a *model.Analysis, path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderText writes the full plain-text report
func (r *Renderer) RenderText(a *model.Analysis, path string) error {
	if err := os.WriteFile(path, []byte(r.synthesizer.FullReport(a)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints the executive summary to stdout
func (r *Renderer) RenderSummary(a *model.Analysis) {
	fmt.Print(r.synthesizer.ExecutiveSummary(a))
}

// RenderAnalysis renders the analysis to the specified outputs
func (p *Pipeline) RenderAnalysis(a *model.Analysis, jsonPath, txtPath string, verbose bool) error {
	renderer := NewRenderer(p.config.Output.IncludeFooter)

	if jsonPath != "" {
		if err := renderer.RenderJSON(a, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if txtPath != "" {
		if err := renderer.RenderText(a, txtPath); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote report: %s\n", txtPath)
		}
	}

	renderer.RenderSummary(a)

	return nil
}
