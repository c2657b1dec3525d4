package commands

import (
	"cocoa/internal/debuginfo"
	"cocoa/internal/remote"
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// ExposuresCmd implements the 'exposures' command.
type ExposuresCmd struct {
	Days *int `help:"Day offset of the display window, defaults to the settings value"`
}

func (c *ExposuresCmd) Run(g *Global) error {
	days := g.Settings.DaysOfExposureInformationToDisplay
	if c.Days != nil {
		days = *c.Days
	}
	records, err := g.Records()
	if err != nil {
		return err
	}
	events, err := records.EventsToDisplay(context.Background(), days, time.Now())
	if err != nil {
		return err
	}
	return g.printJSON(events)
}

// FetchConfigCmd implements the 'fetch-config' command.
type FetchConfigCmd struct{}

func (c *FetchConfigCmd) Run(g *Global) error {
	f := remote.NewConfigurationFetcher(nil, g.State, g.Settings)
	stored, err := f.Fetch(context.Background())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.Out, "%s stored=%t\n", f.URL(), stored)
	return err
}

// DumpCmd implements the 'dump' command.
type DumpCmd struct {
	Query string `short:"q" help:"JMESPath expression applied to the JSON report"`
	JSON  bool   `help:"Print the report as JSON instead of text lines"`
}

func (c *DumpCmd) Run(g *Global) error {
	records, err := g.Records()
	if err != nil {
		log.WithError(err).Warn("secure store unavailable, exposure count omitted")
	}
	report, err := debuginfo.NewBuilder(g.State, records, g.Settings).Build(context.Background())
	if err != nil {
		return err
	}
	if c.Query != "" {
		v, err := debuginfo.QueryString(c.Query, report)
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		_, err = fmt.Fprintln(g.Out, *v)
		return err
	}
	if c.JSON {
		return g.printJSON(report)
	}
	_, err = fmt.Fprintln(g.Out, strings.Join(report.Lines(), "\n"))
	return err
}
