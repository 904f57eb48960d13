package main

import (
	"context"
	"flag"
	"fmt"
	"hashlens/corpus"
	errs "hashlens/errors"
	"hashlens/explain"
	"hashlens/internal"
	"hashlens/services"
	"hashlens/unhash"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/samber/lo"
)

type commandLine struct {
	config  Config
	log     *slog.Logger
	service *services.UnhashService
	out     io.Writer
}

func (c commandLine) dispatch(name string, args []string) error {
	switch name {
	case "fit":
		return c.fit(args)
	case "names":
		return c.names(args)
	case "transform":
		return c.transform(args)
	case "explain":
		return c.explain(args)
	case "runs":
		return c.runs(args)
	case "reset":
		return c.reset()
	case "serve":
		return c.serve(args)
	default:
		return fmt.Errorf("%w: %q", errs.ErrUnknownCommand, name)
	}
}

func (c commandLine) fit(args []string) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	resume := fs.Bool("resume", false, "add to the stored counts instead of replacing them")
	alwaysSigned := fs.Bool("always-signed", false, "print signs as hashed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errs.ErrNoDocuments
	}

	loader, err := corpus.NewLoader(c.log, c.config.SplitMode())
	if err != nil {
		return err
	}
	docs, err := loader.Load(fs.Args())
	if err != nil {
		return err
	}
	for _, share := range corpus.Profile(docs) {
		c.log.Info("Corpus language", "lang", share.Code, "documents", share.Documents)
	}

	run, err := c.service.Fit(corpus.Texts(docs), *resume)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "run %s: %d documents, %d distinct terms\n", run.ID, run.Documents, run.Terms)
	c.printNames(c.service.Vectorizer().FeatureNames(*alwaysSigned), false, "")
	return nil
}

func (c commandLine) names(args []string) error {
	fs := flag.NewFlagSet("names", flag.ContinueOnError)
	alwaysSigned := fs.Bool("always-signed", false, "print signs as hashed")
	all := fs.Bool("all", false, "include columns no term was seen for")
	grep := fs.String("grep", "", "only columns whose terms contain this text")
	column := fs.Int("column", -1, "only this column")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.service.Restore(); err != nil {
		return err
	}

	names := c.service.Vectorizer().FeatureNames(*alwaysSigned)
	if *column >= 0 {
		if *column >= names.NFeatures() {
			return fmt.Errorf("column %d out of range [0, %d)", *column, names.NFeatures())
		}
		fmt.Fprintln(c.out, names.Name(*column))
		return nil
	}
	c.printNames(names, *all, *grep)
	return nil
}

func (c commandLine) printNames(names unhash.FeatureNames, all bool, grep string) {
	table := internal.NewTable(c.out, []string{"Column", "Terms"})
	var indices []int
	if all {
		indices = names.Filter(func(idx int, name string) bool {
			return idx < names.NFeatures() && (grep == "" || strings.Contains(name, grep))
		})
	} else {
		indices = lo.Filter(names.KnownColumns(), func(idx int, _ int) bool {
			return grep == "" || strings.Contains(names.Name(idx), grep)
		})
	}
	for _, idx := range indices {
		cell := names.Name(idx)
		if collisions, known := names.Collisions(idx); known {
			cell = internal.ColorizeCollisions(collisions, c.config.MaxNames)
		}
		table.Append([]string{strconv.Itoa(idx), cell})
	}
	table.Render()
}

func (c commandLine) transform(args []string) error {
	if len(args) == 0 {
		return errs.ErrNoDocuments
	}
	if err := c.service.Restore(); err != nil {
		return err
	}

	ivec := c.service.Vectorizer()
	names := ivec.FeatureNames(true)
	table := internal.NewTable(c.out, []string{"Document", "Column", "Value", "Terms"})
	for i, row := range ivec.Transform(args) {
		for j, idx := range row.Indices {
			table.Append([]string{
				strconv.Itoa(i),
				strconv.Itoa(idx),
				internal.ColorizeWeight(row.Values[j]),
				names.Format(idx, " | ", c.config.MaxNames),
			})
		}
	}
	table.Render()
	return nil
}

func (c commandLine) explain(args []string) error {
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	weightsPath := fs.String("weights", "", "file of whitespace separated weights, one per column")
	k := fs.Int("k", 20, "number of features to show, 0 for all")
	if err := fs.Parse(args); err != nil {
		return err
	}
	weights, err := readWeights(*weightsPath)
	if err != nil {
		return err
	}
	if err = c.service.Restore(); err != nil {
		return err
	}

	top, err := explain.NewExplainer(c.service.Vectorizer(), c.config.MaxNames).Top(weights, *k)
	if err != nil {
		return err
	}
	table := internal.NewTable(c.out, []string{"Rank", "Column", "Weight", "Feature"})
	for rank, a := range top {
		table.Append([]string{strconv.Itoa(rank + 1), strconv.Itoa(a.Index), internal.ColorizeWeight(a.Weight), a.Feature})
	}
	table.Render()
	return nil
}

func readWeights(path string) ([]float64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading weights: %w", err)
	}
	fields := strings.Fields(string(content))
	weights := make([]float64, len(fields))
	for i, f := range fields {
		if weights[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, fmt.Errorf("weight %d: %w", i, err)
		}
	}
	return weights, nil
}

func (c commandLine) runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	limit := fs.Int("limit", 10, "number of runs to show, 0 for all")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var atMost *int
	if *limit > 0 {
		atMost = limit
	}
	runs, err := c.service.Runs(atMost)
	if err != nil {
		return err
	}

	table := internal.NewTable(c.out, []string{"Run", "At", "Documents", "Terms", "Features", "Resumed"})
	for _, run := range runs {
		table.Append([]string{
			run.ID.String(),
			run.At.Format("2006-01-02 15:04:05"),
			strconv.Itoa(run.Documents),
			strconv.Itoa(run.Terms),
			strconv.Itoa(run.NFeatures),
			strconv.FormatBool(run.Resumed),
		})
	}
	table.Render()
	return nil
}

func (c commandLine) reset() error {
	if err := c.service.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "term counts cleared")
	return nil
}

func (c commandLine) serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := fs.Int("port", 6060, "port of the inspect page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.service.Restore(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return internal.ServeInspect(ctx, c.log, *port, c.inspectHandler())
}

func (c commandLine) inspectHandler() http.Handler {
	names := c.service.Vectorizer().FeatureNames(false)
	rows := func(grep string) []internal.InspectRow {
		indices := lo.Filter(names.KnownColumns(), func(idx int, _ int) bool {
			return grep == "" || strings.Contains(names.Name(idx), grep)
		})
		return lo.Map(indices, func(idx int, _ int) internal.InspectRow {
			collisions, _ := names.Collisions(idx)
			return internal.InspectRow{Column: idx, Collisions: collisions}
		})
	}
	stats := func() map[string]any {
		return map[string]any{
			"n_features":    names.NFeatures(),
			"known_columns": names.Known(),
			"terms":         len(c.service.Vectorizer().Unhasher().Terms()),
		}
	}
	return internal.NewInspectHandler("/inspect", rows, stats)
}
