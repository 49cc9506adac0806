package weather

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"terminal-weather/models"
)

const imperialSummary = "\tIn Ames it is 72.5°F and partly cloudy.\n" +
	"\tWind is 9.4 mph out of the NNW, with gusts up to 14.1 mph.\n" +
	"\tFeels like: 73.2 degrees.\n" +
	"\n" +
	"\t2026-10-19:\n\tHigh: 75.2, Low: 53.8\n\tChance of Rain/Snow: 0%/0%\n\n" +
	"\t2026-10-20:\n\tHigh: 68, Low: 49.1\n\tChance of Rain/Snow: 80%/0%\n\n" +
	"\t2026-10-21:\n\tHigh: 60.8, Low: 29.8\n\tChance of Rain/Snow: 10%/45%\n\n"

const metricSummary = "\tIn Ames it is 22.5°C and partly cloudy.\n" +
	"\tWind is 9.4 mph out of the NNW, with gusts up to 14.1 mph.\n" +
	"\tFeels like: 22.9 degrees.\n" +
	"\n" +
	"\t2026-10-19:\n\tHigh: 24, Low: 12.1\n\tChance of Rain/Snow: 0%/0%\n\n" +
	"\t2026-10-20:\n\tHigh: 20, Low: 9.5\n\tChance of Rain/Snow: 80%/0%\n\n" +
	"\t2026-10-21:\n\tHigh: 16, Low: -1.2\n\tChance of Rain/Snow: 10%/45%\n\n"

func TestWriteSummary(t *testing.T) {
	tests := []struct {
		name  string
		units Units
		want  string
	}{
		{"imperial", Imperial, imperialSummary},
		{"metric", Metric, metricSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := newTestUpstream(t, http.StatusOK, fixture(t))
			c := newTestClient(t, up)

			s, err := BuildSummary(context.Background(), c)
			if err != nil {
				t.Fatalf("BuildSummary failed: %v", err)
			}

			var out bytes.Buffer
			if err := WriteSummary(&out, s, tt.units); err != nil {
				t.Fatalf("WriteSummary failed: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("summary mismatch\ngot:\n%s\nwant:\n%s", out.String(), tt.want)
			}
			if up.hits.Load() != 1 {
				t.Errorf("upstream hit %d times, want 1", up.hits.Load())
			}
		})
	}
}

func TestWriteSummaryMissingField(t *testing.T) {
	s := Summary{
		LocationName: "Ames",
		Current: map[string]string{
			models.FieldTempF:      "72",
			models.FieldCondition:  "Sunny",
			models.FieldWindMph:    "3",
			models.FieldWindDir:    "N",
			models.FieldGustMph:    "5",
			models.FieldFeelsLikeF: "71",
		},
		Forecast: []map[string]string{
			{models.FieldDate: "2026-10-19"},
		},
	}

	var out bytes.Buffer
	err := WriteSummary(&out, s, Imperial)
	if !errors.Is(err, models.ErrMissingField) {
		t.Fatalf("error = %v, want ErrMissingField", err)
	}
	if out.Len() != 0 {
		t.Errorf("partial summary written: %q", out.String())
	}

	delete(s.Current, models.FieldWindDir)
	s.Forecast = nil
	if err := WriteSummary(&out, s, Imperial); !errors.Is(err, models.ErrMissingField) {
		t.Errorf("missing current field error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("partial summary written: %q", out.String())
	}
}

func TestBuildSummaryFailureWritesNothing(t *testing.T) {
	c := newTestClient(t, newTestUpstream(t, http.StatusOK, []byte(`{"location":{"name":"Ames"}}`)))

	_, err := BuildSummary(context.Background(), c)
	if !errors.Is(err, models.ErrSchemaMismatch) {
		t.Errorf("error = %v, want ErrSchemaMismatch", err)
	}
}
