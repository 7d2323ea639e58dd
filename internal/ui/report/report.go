// Package report renders plans and run summaries for the terminal.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/imamik/adbvnet/internal/provisioning"
)

// PlanStep is one step of a planned pipeline and the resource it touches.
type PlanStep struct {
	Name   string
	Target string
}

// Plan describes a pipeline before it runs.
type Plan struct {
	Pipeline string
	Rollback bool
	Steps    []PlanStep
}

// Detail is a labelled value shown under a run summary.
type Detail struct {
	Label string
	Value string
}

// Outcome describes a finished pipeline run.
type Outcome struct {
	Pipeline string
	Steps    []string
	Err      error
	Duration time.Duration
	Details  []Detail
}

// RenderPlan renders the steps each pipeline would run, in order.
func RenderPlan(plans []Plan, styled bool) string {
	p := painter(styled)
	var b strings.Builder

	b.WriteString(p.paint(titleStyle, "adbvnet plan"))
	b.WriteString("\n")
	for _, plan := range plans {
		rollback := "rollback on failure"
		if !plan.Rollback {
			rollback = "no rollback"
		}
		b.WriteString("\n")
		b.WriteString(p.paint(sectionStyle, fmt.Sprintf("%s pipeline", plan.Pipeline)))
		b.WriteString(" ")
		b.WriteString(p.paint(dimStyle, "("+rollback+")"))
		b.WriteString("\n")

		for i, step := range plan.Steps {
			fmt.Fprintf(&b, "  %d. %-28s %s\n", i+1, step.Name, p.paint(dimStyle, step.Target))
		}
	}
	return b.String()
}

// RenderSummary renders the result of each pipeline run: completed steps,
// the failing step, skipped steps and any rollback failure.
func RenderSummary(outcomes []Outcome, styled bool) string {
	p := painter(styled)
	var b strings.Builder

	for _, o := range outcomes {
		failedAt := len(o.Steps) + 1
		var stepErr *provisioning.StepError
		switch {
		case errors.As(o.Err, &stepErr):
			failedAt = stepErr.Index
		case o.Err != nil:
			failedAt = 0
		}

		status := p.paint(readyStyle, "succeeded")
		if o.Err != nil {
			status = p.paint(failedStyle, "failed")
		}
		b.WriteString(p.paint(sectionStyle, o.Pipeline+" pipeline"))
		fmt.Fprintf(&b, " %s %s\n", status, p.paint(dimStyle, "in "+o.Duration.Round(time.Millisecond).String()))

		for i, name := range o.Steps {
			switch {
			case i+1 < failedAt:
				fmt.Fprintf(&b, "  %s %s\n", p.paint(readyStyle, checkMark), name)
			case i+1 == failedAt:
				fmt.Fprintf(&b, "  %s %s: %v\n", p.paint(failedStyle, crossMark), name, stepErr.Err)
			default:
				fmt.Fprintf(&b, "  %s %s\n", p.paint(dimStyle, pending), p.paint(dimStyle, name))
			}
		}

		if stepErr != nil && stepErr.Rollback != nil {
			fmt.Fprintf(&b, "  %s rollback incomplete: %v\n", p.paint(warningStyle, warnMark), stepErr.Rollback)
		} else if o.Err != nil && stepErr == nil {
			fmt.Fprintf(&b, "  %s %v\n", p.paint(failedStyle, crossMark), o.Err)
		}

		for _, d := range o.Details {
			if d.Value == "" {
				continue
			}
			fmt.Fprintf(&b, "  %-14s %s\n", d.Label+":", d.Value)
		}
		b.WriteString("\n")
	}
	return b.String()
}
