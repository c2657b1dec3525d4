package debuginfo

import (
	"cocoa/internal/exposure"
	"cocoa/internal/state"
	"cocoa/internal/types"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// RegionReport is the bookkeeping of one region rendered for humans.
type RegionReport struct {
	Region                  string   `json:"region"`
	LastProcessTek          string   `json:"last_process_tek"`
	LastProcessTekTimestamp int64    `json:"last_process_tek_timestamp"`
	ETag                    string   `json:"etag"`
	BackgroundHistory       []string `json:"background_history"`
	TekListCount            int64    `json:"tek_list_count"`
	DownloadCount           int64    `json:"download_count"`
	LastDownload            string   `json:"last_download"`
}

type Report struct {
	AppVersion       string         `json:"app_version"`
	SupportedRegions []string       `json:"supported_regions"`
	CdnURL           string         `json:"cdn_url"`
	APIURL           string         `json:"api_url"`
	Now              string         `json:"now"`
	ExposureCount    *int           `json:"exposure_count"`
	HasConfiguration bool           `json:"has_configuration"`
	Regions          []RegionReport `json:"regions"`
}

// Builder assembles a Report from the live stores. A nil record store leaves the exposure
// count out of the report.
type Builder struct {
	state    *state.Store
	records  *exposure.RecordStore
	settings types.Settings
	now      func() time.Time
}

func NewBuilder(st *state.Store, records *exposure.RecordStore, settings types.Settings) *Builder {
	return &Builder{state: st, records: records, settings: settings, now: time.Now}
}

func (b *Builder) Build(ctx context.Context) (*Report, error) {
	loc := b.settings.DisplayLocation()
	now := b.now()

	var count *int
	if b.records != nil {
		n, err := b.records.CountToDisplay(ctx, b.settings.DaysOfExposureInformationToDisplay, now)
		if err != nil {
			return nil, err
		}
		count = &n
	}
	_, hasConfig, err := b.state.RawConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{
		AppVersion:       b.settings.AppVersion,
		SupportedRegions: b.settings.SupportedRegions,
		CdnURL:           b.settings.CdnURLBase,
		APIURL:           b.settings.APIURLBase,
		Now:              now.In(loc).Format(timeLayout),
		ExposureCount:    count,
		HasConfiguration: hasConfig,
		Regions:          make([]RegionReport, 0, len(b.settings.SupportedRegions)),
	}
	for _, region := range b.settings.SupportedRegions {
		rr, err := b.region(ctx, region, loc)
		if err != nil {
			return nil, err
		}
		r.Regions = append(r.Regions, rr)
	}
	return r, nil
}

func (b *Builder) region(ctx context.Context, region string, loc *time.Location) (RegionReport, error) {
	rr := RegionReport{Region: region}
	var err error
	if rr.LastProcessTekTimestamp, err = b.state.LastProcessTekTimestamp(ctx, region); err != nil {
		return rr, err
	}
	rr.LastProcessTek = TimeString(rr.LastProcessTekTimestamp, loc)
	if rr.ETag, err = b.state.ETag(ctx, region); err != nil {
		return rr, err
	}
	history, err := b.state.BackgroundHistory(ctx, region)
	if err != nil {
		return rr, err
	}
	rr.BackgroundHistory = RenderHistory(history, loc)
	if rr.TekListCount, err = b.state.LastProcessTekListCount(ctx, region); err != nil {
		return rr, err
	}
	if rr.DownloadCount, err = b.state.LastDownloadCount(ctx, region); err != nil {
		return rr, err
	}
	last, err := b.state.LastDownloadDateTime(ctx, region)
	if err != nil {
		return rr, err
	}
	if !last.IsZero() {
		rr.LastDownload = last.In(loc).Format(timeLayout)
	}
	return rr, nil
}

// TimeString renders epoch millis in loc.
func TimeString(millis int64, loc *time.Location) string {
	return time.UnixMilli(millis).In(loc).Format(timeLayout)
}

// RenderHistory renders each history marker as a time. Markers that are not epoch millis are
// kept verbatim.
func RenderHistory(tokens []string, loc *time.Location) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		millis, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			out = append(out, t)
			continue
		}
		out = append(out, TimeString(millis, loc))
	}
	return out
}

// Lines formats the report the way the debug screen shows it.
func (r *Report) Lines() []string {
	lines := []string{
		"Ver: " + r.AppVersion,
		"Region: " + strings.Join(r.SupportedRegions, ","),
		"CdnUrl: " + r.CdnURL,
		"ApiUrl: " + r.APIURL,
		"ExposureCount: " + r.exposureCount(),
		fmt.Sprintf("Configuration: %t", r.HasConfiguration),
		"Now: " + r.Now,
	}
	for _, rr := range r.Regions {
		lines = append(lines,
			"---"+rr.Region+"---",
			"LastProcessTek: "+rr.LastProcessTek,
			fmt.Sprintf(" (long): %d", rr.LastProcessTekTimestamp),
			"ETag: "+rr.ETag,
			"LastProcessTekBg: "+strings.Join(rr.BackgroundHistory, ", "),
			"LastDownload: "+rr.LastDownload,
			fmt.Sprintf("TekListCount: %d", rr.TekListCount),
			fmt.Sprintf("DownloadCount: %d", rr.DownloadCount),
		)
	}
	return lines
}

func (r *Report) exposureCount() string {
	if r.ExposureCount == nil {
		return "unavailable"
	}
	return strconv.Itoa(*r.ExposureCount)
}
