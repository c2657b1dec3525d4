package commands

import (
	"cocoa/internal/types"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// GetCmd implements the 'get' command.
type GetCmd struct {
	Field  string `arg:"" help:"Field name, one of the regional document keys"`
	Region string `arg:"" optional:"" help:"Region identifier, defaults to the primary region"`
}

func (c *GetCmd) Run(g *Global) error {
	v, err := GetField(context.Background(), g, c.Field, regionOrPrimary(g, c.Region))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Out, v)
	return err
}

// SetCmd implements the 'set' command.
type SetCmd struct {
	Field  string `arg:"" help:"Field name, one of the regional document keys"`
	Region string `arg:"" help:"Region identifier"`
	Value  string `arg:"" help:"New value; integers for counts and timestamps, RFC 3339 for date-times"`
}

func (c *SetCmd) Run(g *Global) error {
	return SetField(context.Background(), g, c.Field, c.Region, c.Value)
}

// AppendBgCmd implements the 'append-bg' command.
type AppendBgCmd struct {
	Region string `arg:"" help:"Region identifier"`
	Millis int64  `arg:"" optional:"" help:"Epoch millis to record, defaults to now"`
}

func (c *AppendBgCmd) Run(g *Global) error {
	ctx := context.Background()
	millis := c.Millis
	if millis == 0 {
		millis = time.Now().UnixMilli()
	}
	if err := g.State.AppendBackgroundTimestamp(ctx, c.Region, millis); err != nil {
		return err
	}
	history, err := g.State.BackgroundHistory(ctx, c.Region)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Out, strings.Join(history, ","))
	return err
}

// ResetCmd implements the 'reset' command.
type ResetCmd struct {
	Exposures     bool `help:"Also clear the stored exposure record"`
	Configuration bool `help:"Also remove the stored exposure configuration"`
}

func (c *ResetCmd) Run(g *Global) error {
	ctx := context.Background()
	if err := g.State.ResetExposureDetection(ctx); err != nil {
		return err
	}
	if c.Configuration {
		if err := g.State.RemoveConfiguration(ctx); err != nil {
			return err
		}
	}
	if c.Exposures {
		records, err := g.Records()
		if err != nil {
			return err
		}
		if err := records.Clear(ctx); err != nil {
			return err
		}
	}
	return nil
}

func regionOrPrimary(g *Global, region string) string {
	if region == "" {
		return g.Settings.PrimaryRegion()
	}
	return region
}

// GetField reads a regional field by its document key and renders it as text.
func GetField(ctx context.Context, g *Global, field, region string) (string, error) {
	switch field {
	case types.KeyLastProcessTekTimestamp:
		v, err := g.State.LastProcessTekTimestamp(ctx, region)
		return strconv.FormatInt(v, 10), err
	case types.KeyETag:
		return g.State.ETag(ctx, region)
	case types.KeyLastProcessTekTimestampBg:
		v, err := g.State.BackgroundHistory(ctx, region)
		return strings.Join(v, ","), err
	case types.KeyLastProcessTekListCount:
		v, err := g.State.LastProcessTekListCount(ctx, region)
		return strconv.FormatInt(v, 10), err
	case types.KeyLastDownloadCount:
		v, err := g.State.LastDownloadCount(ctx, region)
		return strconv.FormatInt(v, 10), err
	case types.KeyLastDownloadDateTime:
		v, err := g.State.LastDownloadDateTime(ctx, region)
		if err != nil || v.IsZero() {
			return "", err
		}
		return v.Format(time.RFC3339), nil
	}
	return "", unknownField(field)
}

// SetField parses value for the field and writes it. The rolling history is only written
// through append-bg.
func SetField(ctx context.Context, g *Global, field, region, value string) error {
	logger := log.WithFields(log.Fields{"key": field, "region": region})
	switch field {
	case types.KeyETag:
		return g.State.SetETag(ctx, region, value)
	case types.KeyLastDownloadDateTime:
		at, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return types.Err(types.ErrMalformed, err, "%s wants an RFC 3339 time", field)
		}
		return g.State.SetLastDownloadDateTime(ctx, region, at)
	case types.KeyLastProcessTekTimestamp, types.KeyLastProcessTekListCount, types.KeyLastDownloadCount:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return types.Err(types.ErrMalformed, err, "%s wants an integer", field)
		}
		logger.WithField("value", n).Debug("setting integer field")
		switch field {
		case types.KeyLastProcessTekTimestamp:
			return g.State.SetLastProcessTekTimestamp(ctx, region, n)
		case types.KeyLastProcessTekListCount:
			return g.State.SetLastProcessTekListCount(ctx, region, n)
		default:
			return g.State.SetLastDownloadCount(ctx, region, n)
		}
	case types.KeyLastProcessTekTimestampBg:
		return types.Err(types.ErrInvalidState, nil, "%s is append only, use append-bg", field)
	}
	return unknownField(field)
}

func unknownField(field string) error {
	return types.Err(types.ErrNotFound, nil, "unknown field %q, expected one of %s", field, strings.Join(types.RegionalKeys, ", "))
}
